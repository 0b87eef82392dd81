package service

import (
	"context"
	"fmt"

	"github.com/parkgate/enterprise-api/internal/config"
	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
	"go.uber.org/zap"
)

type CompanyService struct {
	companyRepo *repository.CompanyRepository
	contactRepo *repository.ContactRepository
	projectRepo *repository.ProjectRepository
	metricRepo  *repository.MetricRepository
	cfg         *config.ReportConfig
	logger      *zap.Logger
}

func NewCompanyService(
	companyRepo *repository.CompanyRepository,
	contactRepo *repository.ContactRepository,
	projectRepo *repository.ProjectRepository,
	metricRepo *repository.MetricRepository,
	cfg *config.ReportConfig,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		contactRepo: contactRepo,
		projectRepo: projectRepo,
		metricRepo:  metricRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Create inserts the company, then its nested contacts one by one. The inserts
// are not wrapped in a transaction: a contact failure leaves the company in
// place, matching the legacy system's observable behavior.
func (s *CompanyService) Create(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		Name:            req.Name,
		LegalPerson:     req.LegalPerson,
		MainProducts:    req.MainProducts,
		ProductModel:    req.ProductModel,
		PartySecretary:  req.PartySecretary,
		TotalInvestment: req.TotalInvestment,
		EmployeeCount:   req.EmployeeCount,
		RegisterDate:    req.RegisterDate,
		CompletionDate:  req.CompletionDate,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	for _, input := range req.Contacts {
		contact := &domain.Contact{
			CompanyID: company.ID,
			Role:      input.Role,
			Name:      input.Name,
			Position:  input.Position,
			Phone:     input.Phone,
			IsPrimary: input.IsPrimary,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
		company.Contacts = append(company.Contacts, *contact)
	}

	s.logger.Info("company created",
		zap.Uint("company_id", company.ID),
		zap.String("name", company.Name),
		zap.Int("contacts", len(company.Contacts)),
	)
	return company, nil
}

// Delete hard-deletes the company. Contacts, projects, and metric records are
// intentionally left untouched; queries against them return empty results.
func (s *CompanyService) Delete(ctx context.Context, id uint) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	s.logger.Info("company deleted", zap.Uint("company_id", id))
	return nil
}

// Overview returns the dashboard listing: all companies newest-first with
// their primary daily contact phone
func (s *CompanyService) Overview(ctx context.Context) ([]domain.CompanyOverview, error) {
	overviews, err := s.companyRepo.ListOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return overviews, nil
}

// Summaries returns the id/name listing ordered by name
func (s *CompanyService) Summaries(ctx context.Context) ([]domain.CompanySummary, error) {
	summaries, err := s.companyRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return summaries, nil
}

// Detail returns the archive page view: the company with its contacts, its
// current-year annual totals per metric type, and its project when one exists
func (s *CompanyService) Detail(ctx context.Context, id uint) (*domain.CompanyDetailView, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	contacts, err := s.contactRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	company.Contacts = contacts

	totals, err := s.metricRepo.AnnualActualTotals(ctx, id, s.cfg.CurrentYear)
	if err != nil {
		return nil, fmt.Errorf("failed to sum annual totals: %w", err)
	}

	project, err := s.projectRepo.FirstByCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &domain.CompanyDetailView{
		Company:      *company,
		Year:         s.cfg.CurrentYear,
		AnnualTotals: totals,
		Project:      project,
	}, nil
}
