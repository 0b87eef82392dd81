package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
)

// MetricService persists monthly and annual metric submissions. Each entry
// upserts on its natural key, so resubmitting a period overwrites the
// previous values instead of stacking rows.
type MetricService struct {
	metricRepo *repository.MetricRepository
	logger     *zap.Logger
}

func NewMetricService(metricRepo *repository.MetricRepository, logger *zap.Logger) *MetricService {
	return &MetricService{
		metricRepo: metricRepo,
		logger:     logger,
	}
}

// SaveMonthly upserts a single monthly entry.
func (s *MetricService) SaveMonthly(ctx context.Context, in *domain.MonthlyMetricInput) error {
	if !in.Type.Valid() {
		return domain.ErrInvalidMetricType
	}
	if in.Month < 1 || in.Month > 12 {
		return fmt.Errorf("month %d out of range", in.Month)
	}

	m := &domain.MonthlyMetric{
		CompanyID:    in.CompanyID,
		Type:         in.Type,
		Year:         in.Year,
		Month:        in.Month,
		PlannedValue: in.PlannedValue,
		ActualValue:  in.ActualValue,
	}
	if err := s.metricRepo.UpsertMonthly(ctx, m); err != nil {
		s.logger.Error("failed to save monthly metric",
			zap.Uint("company_id", in.CompanyID),
			zap.String("type", string(in.Type)),
			zap.Int("year", in.Year),
			zap.Int("month", in.Month),
			zap.Error(err))
		return fmt.Errorf("saving monthly metric: %w", err)
	}
	return nil
}

// SaveAnnual upserts a single annual entry.
func (s *MetricService) SaveAnnual(ctx context.Context, in *domain.AnnualMetricInput) error {
	if !in.Type.Valid() {
		return domain.ErrInvalidMetricType
	}

	m := &domain.AnnualMetric{
		CompanyID:    in.CompanyID,
		Type:         in.Type,
		Year:         in.Year,
		PlannedValue: in.PlannedValue,
		ActualValue:  in.ActualValue,
	}
	if err := s.metricRepo.UpsertAnnual(ctx, m); err != nil {
		s.logger.Error("failed to save annual metric",
			zap.Uint("company_id", in.CompanyID),
			zap.String("type", string(in.Type)),
			zap.Int("year", in.Year),
			zap.Error(err))
		return fmt.Errorf("saving annual metric: %w", err)
	}
	return nil
}

// SaveBatch applies every entry of a combined submission in order. The
// batch is not atomic: entries before a failing one stay persisted.
func (s *MetricService) SaveBatch(ctx context.Context, batch *domain.EconomicDataBatch) (int, error) {
	saved := 0
	for i := range batch.Monthly {
		if err := s.SaveMonthly(ctx, &batch.Monthly[i]); err != nil {
			return saved, err
		}
		saved++
	}
	for i := range batch.Annual {
		if err := s.SaveAnnual(ctx, &batch.Annual[i]); err != nil {
			return saved, err
		}
		saved++
	}
	s.logger.Info("economic data batch saved", zap.Int("entries", saved))
	return saved, nil
}
