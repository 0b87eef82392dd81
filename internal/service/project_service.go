package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
)

// ProjectService manages construction projects and their progress notes.
// A company holds at most one project by convention: saving finds the
// first existing record and updates it in place.
type ProjectService struct {
	companyRepo  *repository.CompanyRepository
	projectRepo  *repository.ProjectRepository
	progressRepo *repository.ProgressRepository
	logger       *zap.Logger
}

func NewProjectService(
	companyRepo *repository.CompanyRepository,
	projectRepo *repository.ProjectRepository,
	progressRepo *repository.ProgressRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		companyRepo:  companyRepo,
		projectRepo:  projectRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// Save inserts the company's project, or overwrites the existing one.
func (s *ProjectService) Save(ctx context.Context, req *domain.UpsertProjectRequest) (*domain.Project, error) {
	if req.CompanyID == 0 {
		return nil, domain.ErrMissingCompanyID
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FirstByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("looking up project: %w", err)
	}

	created := project == nil
	if created {
		project = &domain.Project{CompanyID: req.CompanyID}
	}

	project.Name = req.Name
	project.Description = req.Description
	project.TotalInvestment = req.TotalInvestment
	project.DesignCapacity = req.DesignCapacity
	project.ExpectedCapacity = req.ExpectedCapacity
	project.ActualCapacity = req.ActualCapacity
	project.ExpectedOutput = req.ExpectedOutput
	project.ActualOutput = req.ActualOutput
	project.Status = req.Status
	project.StartDate = req.StartDate
	project.ProductionDate = req.ProductionDate

	if created {
		err = s.projectRepo.Create(ctx, project)
	} else {
		err = s.projectRepo.Update(ctx, project)
	}
	if err != nil {
		s.logger.Error("failed to save project",
			zap.Uint("company_id", req.CompanyID),
			zap.Error(err))
		return nil, fmt.Errorf("saving project: %w", err)
	}

	s.logger.Info("project saved",
		zap.Uint("project_id", project.ID),
		zap.Uint("company_id", project.CompanyID),
		zap.Bool("created", created))
	return project, nil
}

// View assembles the project page for a company: the company record, its
// project if one exists, and the project's progress notes newest first.
func (s *ProjectService) View(ctx context.Context, companyID uint) (*domain.ProjectView, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FirstByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("looking up project: %w", err)
	}

	view := &domain.ProjectView{
		Company:  *company,
		Project:  project,
		Progress: []domain.ProgressUpdate{},
	}
	if project != nil {
		updates, err := s.progressRepo.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, fmt.Errorf("listing progress: %w", err)
		}
		view.Progress = updates
	}
	return view, nil
}

// AddProgress appends a dated note to a project.
func (s *ProjectService) AddProgress(ctx context.Context, req *domain.CreateProgressRequest) (*domain.ProgressUpdate, error) {
	update := &domain.ProgressUpdate{
		ProjectID:  req.ProjectID,
		Content:    req.Content,
		UpdateDate: req.UpdateDate,
	}
	if err := s.progressRepo.Create(ctx, update); err != nil {
		s.logger.Error("failed to add progress",
			zap.Uint("project_id", req.ProjectID),
			zap.Error(err))
		return nil, fmt.Errorf("adding progress: %w", err)
	}
	return update, nil
}

// DeleteProgress removes a single progress note.
func (s *ProjectService) DeleteProgress(ctx context.Context, id uint) error {
	if err := s.progressRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete progress", zap.Uint("progress_id", id), zap.Error(err))
		return fmt.Errorf("deleting progress: %w", err)
	}
	return nil
}
