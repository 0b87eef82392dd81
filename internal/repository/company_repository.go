package repository

import (
	"context"
	"errors"

	"github.com/parkgate/enterprise-api/internal/domain"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// ListOverview returns all companies newest-first, each with the phone of its
// primary daily contact when one exists
func (r *CompanyRepository) ListOverview(ctx context.Context) ([]domain.CompanyOverview, error) {
	var overviews []domain.CompanyOverview
	err := r.db.WithContext(ctx).
		Model(&domain.Company{}).
		Select(`companies.*, (SELECT phone FROM contacts
			WHERE contacts.company_id = companies.id
			AND contacts.contact_role = ? AND contacts.is_primary = ?
			LIMIT 1) AS contact_phone`, domain.ContactRoleDaily, true).
		Order("companies.created_at DESC").
		Scan(&overviews).Error
	return overviews, err
}

// ListSummaries returns id/name pairs ordered by name
func (r *CompanyRepository) ListSummaries(ctx context.Context) ([]domain.CompanySummary, error) {
	var summaries []domain.CompanySummary
	err := r.db.WithContext(ctx).
		Model(&domain.Company{}).
		Select("id, name").
		Order("name").
		Scan(&summaries).Error
	return summaries, err
}

// ListByIDs returns the companies matching ids; missing ids are silently
// skipped. Callers that need input order reorder the result themselves.
func (r *CompanyRepository) ListByIDs(ctx context.Context, ids []uint) ([]domain.Company, error) {
	var companies []domain.Company
	if len(ids) == 0 {
		return companies, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&companies).Error
	return companies, err
}

// Delete hard-deletes the company row only. Contacts, projects, and metric
// records referencing it are left in place (legacy behavior).
func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Company{}, "id = ?", id).Error
}
