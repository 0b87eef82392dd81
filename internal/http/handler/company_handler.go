package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/service"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	companyService *service.CompanyService
	logger         *zap.Logger
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// Dashboard returns the landing page payload: every company with the
// phone of its primary daily contact.
func (h *CompanyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	overview, err := h.companyService.Overview(r.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load companies")
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// Detail returns one company's archive page payload.
func (h *CompanyHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.companyService.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Company not found")
			return
		}
		h.logger.Error("failed to load company detail", zap.Uint("company_id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load company")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// List returns the id/name company listing used by selection widgets.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.companyService.Summaries(r.Context())
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		respondFailure(w, "Failed to list companies: %v", err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

// Create adds a company together with its nested contacts.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Failed to create company: %v", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondFailure(w, "Failed to create company: %v", err)
		return
	}

	company, err := h.companyService.Create(r.Context(), &req)
	if err != nil {
		respondFailure(w, "Failed to create company: %v", err)
		return
	}

	respondJSON(w, http.StatusOK, domain.APIResponse{
		Message:   "Company created successfully",
		Success:   true,
		CompanyID: &company.ID,
	})
}

// Delete removes a company record. Child records stay in place.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondFailure(w, "Failed to delete company: %v", err)
		return
	}

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		respondFailure(w, "Failed to delete company: %v", err)
		return
	}
	respondResult(w, "Company deleted successfully", true)
}
