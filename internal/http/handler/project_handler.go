package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/service"
)

// ProjectHandler handles HTTP requests for projects and progress notes
type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// Page returns the project page payload for one company.
func (h *ProjectHandler) Page(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.projectService.View(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Company not found")
			return
		}
		h.logger.Error("failed to load project page", zap.Uint("company_id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Save inserts or overwrites a company's project.
func (h *ProjectHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Failed to save project: %v", err)
		return
	}
	if req.CompanyID == 0 {
		respondFailure(w, "Missing company id")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondFailure(w, "Failed to save project: %v", err)
		return
	}

	if _, err := h.projectService.Save(r.Context(), &req); err != nil {
		respondFailure(w, "Failed to save project: %v", err)
		return
	}
	respondResult(w, "Project saved successfully", true)
}

// AddProgress appends a dated note to a project.
func (h *ProjectHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Failed to save progress: %v", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondFailure(w, "Failed to save progress: %v", err)
		return
	}

	if _, err := h.projectService.AddProgress(r.Context(), &req); err != nil {
		respondFailure(w, "Failed to save progress: %v", err)
		return
	}
	respondResult(w, "Progress updated successfully", true)
}

// DeleteProgress removes a progress note.
func (h *ProjectHandler) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondFailure(w, "Failed to delete progress: %v", err)
		return
	}

	if err := h.projectService.DeleteProgress(r.Context(), id); err != nil {
		respondFailure(w, "Failed to delete progress: %v", err)
		return
	}
	respondResult(w, "Progress deleted successfully", true)
}
