package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/export"
	"github.com/parkgate/enterprise-api/internal/service"
)

// ExportHandler serves the export configuration page and the three
// document export endpoints
type ExportHandler struct {
	exportService *service.ExportService
	logger        *zap.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ConfigPage returns the export page payload: companies, selectable
// field groups, and supported formats.
func (h *ExportHandler) ConfigPage(w http.ResponseWriter, r *http.Request) {
	view, err := h.exportService.ConfigView(r.Context())
	if err != nil {
		h.logger.Error("failed to load export page", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load export page")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Contacts streams one contact directory as a spreadsheet.
func (h *ExportHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactExportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Export failed: %v", err)
		return
	}

	doc, err := h.exportService.Contacts(r.Context(), req.Type, time.Now())
	if err != nil {
		h.logger.Error("contact export failed", zap.String("type", req.Type), zap.Error(err))
		respondFailure(w, "Export failed: %v", err)
		return
	}
	h.writeDocument(w, doc)
}

// CustomFields streams the free-form field export.
func (h *ExportHandler) CustomFields(w http.ResponseWriter, r *http.Request) {
	var req domain.CustomExportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Export failed: %v", err)
		return
	}

	doc, err := h.exportService.CustomFields(r.Context(), &req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoCompaniesSelected):
			respondFailure(w, "No companies selected")
		case errors.Is(err, domain.ErrNoFieldsSelected):
			respondFailure(w, "No fields selected")
		default:
			h.logger.Error("custom export failed", zap.Error(err))
			respondFailure(w, "Export failed: %v", err)
		}
		return
	}
	h.writeDocument(w, doc)
}

// Advanced streams the grouped-field export. A request without
// companies is the one failure that surfaces as a real 400.
func (h *ExportHandler) Advanced(w http.ResponseWriter, r *http.Request) {
	var req domain.AdvancedExportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Export failed: %v", err)
		return
	}

	doc, err := h.exportService.Advanced(r.Context(), &req, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNoCompaniesSelected) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "No companies selected"})
			return
		}
		h.logger.Error("advanced export failed", zap.Error(err))
		respondFailure(w, "Export failed: %v", err)
		return
	}
	h.writeDocument(w, doc)
}

func (h *ExportHandler) writeDocument(w http.ResponseWriter, doc *export.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
