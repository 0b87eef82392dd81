package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/config"
	"github.com/parkgate/enterprise-api/internal/database"
	"github.com/parkgate/enterprise-api/internal/http/handler"
	"github.com/parkgate/enterprise-api/internal/http/middleware"
	"github.com/parkgate/enterprise-api/internal/http/router"
	"github.com/parkgate/enterprise-api/internal/logger"
	"github.com/parkgate/enterprise-api/internal/repository"
	"github.com/parkgate/enterprise-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	contactRepo := repository.NewContactRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	metricRepo := repository.NewMetricRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, contactRepo, projectRepo, metricRepo, &cfg.Report, log)
	contactService := service.NewContactService(contactRepo, log)
	projectService := service.NewProjectService(companyRepo, projectRepo, progressRepo, log)
	metricService := service.NewMetricService(metricRepo, log)
	reportService := service.NewReportService(companyRepo, metricRepo, &cfg.Report, log)
	exportService := service.NewExportService(companyRepo, contactRepo, projectRepo, metricRepo, &cfg.Report, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	companyHandler := handler.NewCompanyHandler(companyService, log)
	contactHandler := handler.NewContactHandler(contactService, log)
	projectHandler := handler.NewProjectHandler(projectService, log)
	metricHandler := handler.NewMetricHandler(metricService, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	exportHandler := handler.NewExportHandler(exportService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		companyHandler,
		contactHandler,
		projectHandler,
		metricHandler,
		reportHandler,
		exportHandler,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
