package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
)

// ContactService manages contact records and the contact directory views.
type ContactService struct {
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

func NewContactService(contactRepo *repository.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create adds a contact to an existing company.
func (s *ContactService) Create(ctx context.Context, req *domain.CreateContactRequest) (*domain.Contact, error) {
	if req.CompanyID == 0 {
		return nil, domain.ErrMissingCompanyID
	}

	contact := &domain.Contact{
		CompanyID: req.CompanyID,
		Role:      req.Role,
		Name:      req.Name,
		Position:  req.Position,
		Phone:     req.Phone,
		IsPrimary: req.IsPrimary,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		s.logger.Error("failed to create contact",
			zap.Uint("company_id", req.CompanyID),
			zap.Error(err))
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	s.logger.Info("contact created",
		zap.Uint("contact_id", contact.ID),
		zap.Uint("company_id", contact.CompanyID))
	return contact, nil
}

// Update replaces the editable fields of a contact. Role and primary flag
// are fixed at creation.
func (s *ContactService) Update(ctx context.Context, id uint, req *domain.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contact.Name = req.Name
	contact.Position = req.Position
	contact.Phone = req.Phone

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		s.logger.Error("failed to update contact", zap.Uint("contact_id", id), zap.Error(err))
		return nil, fmt.Errorf("updating contact: %w", err)
	}
	return contact, nil
}

// Delete removes a single contact.
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	if _, err := s.contactRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete contact", zap.Uint("contact_id", id), zap.Error(err))
		return fmt.Errorf("deleting contact: %w", err)
	}
	s.logger.Info("contact deleted", zap.Uint("contact_id", id))
	return nil
}

// Directory returns the company-joined contact listing for one role.
// Daily contacts are restricted to the primary contact of each company.
func (s *ContactService) Directory(ctx context.Context, role domain.ContactRole) ([]domain.DirectoryEntry, error) {
	entries, err := s.contactRepo.ListDirectory(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("listing %s directory: %w", role, err)
	}
	return entries, nil
}
