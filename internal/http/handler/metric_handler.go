package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/service"
)

// MetricHandler handles economic data submissions
type MetricHandler struct {
	metricService *service.MetricService
	logger        *zap.Logger
}

// NewMetricHandler creates a new MetricHandler
func NewMetricHandler(metricService *service.MetricService, logger *zap.Logger) *MetricHandler {
	return &MetricHandler{
		metricService: metricService,
		logger:        logger,
	}
}

// Save upserts a batch of monthly and annual metric entries.
func (h *MetricHandler) Save(w http.ResponseWriter, r *http.Request) {
	var batch domain.EconomicDataBatch
	if err := decodeJSON(r, &batch); err != nil {
		respondFailure(w, "Failed to update economic data: %v", err)
		return
	}
	if err := validate.Struct(&batch); err != nil {
		respondFailure(w, "Failed to update economic data: %v", err)
		return
	}

	if _, err := h.metricService.SaveBatch(r.Context(), &batch); err != nil {
		respondFailure(w, "Failed to update economic data: %v", err)
		return
	}
	respondResult(w, "Economic data updated successfully", true)
}
