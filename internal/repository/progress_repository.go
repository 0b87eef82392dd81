package repository

import (
	"context"

	"github.com/parkgate/enterprise-api/internal/domain"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, update *domain.ProgressUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *ProgressRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.ProgressUpdate{}, "id = ?", id).Error
}

// ListByProject returns a project's progress notes, newest first
func (r *ProgressRepository) ListByProject(ctx context.Context, projectID uint) ([]domain.ProgressUpdate, error) {
	var updates []domain.ProgressUpdate
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("update_date DESC").
		Find(&updates).Error
	return updates, err
}
