package repository

import (
	"context"
	"errors"

	"github.com/parkgate/enterprise-api/internal/domain"
	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Contact{}, "id = ?", id).Error
}

// ListByCompany returns all contacts of a company, oldest first
func (r *ContactRepository) ListByCompany(ctx context.Context, companyID uint) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&contacts).Error
	return contacts, err
}

// ListDirectory returns the contact directory for one role, joined with the
// company name. The daily directory is filtered to primary contacts; for the
// other roles every entry is listed.
func (r *ContactRepository) ListDirectory(ctx context.Context, role domain.ContactRole) ([]domain.DirectoryEntry, error) {
	var entries []domain.DirectoryEntry

	query := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Select("contacts.id, companies.name AS company_name, contacts.name, contacts.phone, contacts.position").
		Joins("JOIN companies ON contacts.company_id = companies.id").
		Where("contacts.contact_role = ?", role)

	if role == domain.ContactRoleDaily {
		query = query.Where("contacts.is_primary = ?", true)
	}

	err := query.Scan(&entries).Error
	return entries, err
}

// FirstByCompanyAndRole returns the first matching contact, or nil when the
// company has none for that role
func (r *ContactRepository) FirstByCompanyAndRole(ctx context.Context, companyID uint, role domain.ContactRole, primaryOnly bool) (*domain.Contact, error) {
	var contact domain.Contact

	query := r.db.WithContext(ctx).
		Where("company_id = ? AND contact_role = ?", companyID, role)
	if primaryOnly {
		query = query.Where("is_primary = ?", true)
	}

	err := query.Order("id").First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}
