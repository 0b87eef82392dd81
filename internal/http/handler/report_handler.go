package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/service"
)

// ReportHandler serves the per-company reporting pages
type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Economic returns the 12-month economic table with quarterly sums and
// the chart series for the selected metric type.
func (h *ReportHandler) Economic(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	metricType := domain.MetricType(r.URL.Query().Get("type"))
	if metricType == "" {
		metricType = domain.MetricOutput
	}
	if !metricType.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid metric type")
		return
	}

	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid year")
			return
		}
	}

	view, err := h.reportService.Economic(r.Context(), id, metricType, year)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Company not found")
			return
		}
		h.logger.Error("failed to load economic page", zap.Uint("company_id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load economic data")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// AnnualComparison returns planned/actual pairs per metric across the
// configured comparison years.
func (h *ReportHandler) AnnualComparison(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.reportService.AnnualComparison(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Company not found")
			return
		}
		h.logger.Error("failed to load annual comparison", zap.Uint("company_id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load annual comparison")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Comprehensive returns the month and cumulative values with growth
// rates against the same period one year prior. The month defaults to
// the current calendar month.
func (h *ReportHandler) Comprehensive(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	month := int(time.Now().Month())
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			respondWithError(w, http.StatusBadRequest, "Invalid month")
			return
		}
	}

	view, err := h.reportService.Comprehensive(r.Context(), id, month)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Company not found")
			return
		}
		h.logger.Error("failed to load comprehensive page", zap.Uint("company_id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load comprehensive data")
		return
	}
	respondJSON(w, http.StatusOK, view)
}
