package repository

import (
	"context"
	"errors"

	"github.com/parkgate/enterprise-api/internal/domain"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// FirstByCompany returns the company's project, or nil when it has none.
// There is no unique constraint on company_id; the first match wins.
func (r *ProjectRepository) FirstByCompany(ctx context.Context, companyID uint) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}
