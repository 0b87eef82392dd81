package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/parkgate/enterprise-api/internal/config"
	"github.com/parkgate/enterprise-api/internal/database"
	"github.com/parkgate/enterprise-api/internal/http/handler"
	"github.com/parkgate/enterprise-api/internal/http/middleware"
)

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	rateLimiter    *middleware.RateLimiter
	companyHandler *handler.CompanyHandler
	contactHandler *handler.ContactHandler
	projectHandler *handler.ProjectHandler
	metricHandler  *handler.MetricHandler
	reportHandler  *handler.ReportHandler
	exportHandler  *handler.ExportHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	companyHandler *handler.CompanyHandler,
	contactHandler *handler.ContactHandler,
	projectHandler *handler.ProjectHandler,
	metricHandler *handler.MetricHandler,
	reportHandler *handler.ReportHandler,
	exportHandler *handler.ExportHandler,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		rateLimiter:    rateLimiter,
		companyHandler: companyHandler,
		contactHandler: contactHandler,
		projectHandler: projectHandler,
		metricHandler:  metricHandler,
		reportHandler:  reportHandler,
		exportHandler:  exportHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Page payloads
	r.Get("/", rt.companyHandler.Dashboard)
	r.Get("/company/{id}", rt.companyHandler.Detail)
	r.Get("/company/{id}/economic", rt.reportHandler.Economic)
	r.Get("/company/{id}/project", rt.projectHandler.Page)
	r.Get("/company/{id}/annual_comparison", rt.reportHandler.AnnualComparison)
	r.Get("/company/{id}/comprehensive", rt.reportHandler.Comprehensive)
	r.Get("/contacts", rt.contactHandler.Directory)
	r.Get("/export", rt.exportHandler.ConfigPage)

	// Mutations and exports
	r.Route("/api", func(api chi.Router) {
		api.Get("/companies", rt.companyHandler.List)
		api.Post("/company", rt.companyHandler.Create)
		api.Delete("/company/{id}", rt.companyHandler.Delete)

		api.Post("/contact", rt.contactHandler.Create)
		api.Put("/contact/{id}", rt.contactHandler.Update)
		api.Delete("/contact/{id}", rt.contactHandler.Delete)

		api.Post("/project", rt.projectHandler.Save)
		api.Post("/progress", rt.projectHandler.AddProgress)
		api.Delete("/progress/{id}", rt.projectHandler.DeleteProgress)

		api.Post("/economic_data", rt.metricHandler.Save)

		api.Post("/export_contacts", rt.exportHandler.Contacts)
		api.Post("/export_custom_fields", rt.exportHandler.CustomFields)
		api.Post("/export_advanced", rt.exportHandler.Advanced)
	})

	return r
}
