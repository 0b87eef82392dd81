package repository

import (
	"context"
	"errors"

	"github.com/parkgate/enterprise-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// UpsertMonthly inserts the record or, when the (company, type, year, month)
// key already exists, overwrites its planned and actual values
func (r *MetricRepository) UpsertMonthly(ctx context.Context, m *domain.MonthlyMetric) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "company_id"}, {Name: "metric_type"}, {Name: "year"}, {Name: "month"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"planned_value", "actual_value"}),
		}).
		Create(m).Error
}

// UpsertAnnual inserts the record or overwrites the values for an existing
// (company, type, year) key
func (r *MetricRepository) UpsertAnnual(ctx context.Context, m *domain.AnnualMetric) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "company_id"}, {Name: "metric_type"}, {Name: "year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"planned_value", "actual_value"}),
		}).
		Create(m).Error
}

// GetMonthly returns the record for one key, or nil when none exists
func (r *MetricRepository) GetMonthly(ctx context.Context, companyID uint, t domain.MetricType, year, month int) (*domain.MonthlyMetric, error) {
	var m domain.MonthlyMetric
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND metric_type = ? AND year = ? AND month = ?", companyID, t, year, month).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListMonthly returns a company's records for one type and year, month ascending
func (r *MetricRepository) ListMonthly(ctx context.Context, companyID uint, t domain.MetricType, year int) ([]domain.MonthlyMetric, error) {
	var records []domain.MonthlyMetric
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND metric_type = ? AND year = ?", companyID, t, year).
		Order("month").
		Find(&records).Error
	return records, err
}

// SumMonthly sums planned and actual values over an inclusive month range.
// Absent months contribute zero; an empty range sums to zero.
func (r *MetricRepository) SumMonthly(ctx context.Context, companyID uint, t domain.MetricType, year, fromMonth, toMonth int) (domain.PlannedActual, error) {
	var sum domain.PlannedActual
	err := r.db.WithContext(ctx).
		Model(&domain.MonthlyMetric{}).
		Select("COALESCE(SUM(planned_value), 0) AS planned, COALESCE(SUM(actual_value), 0) AS actual").
		Where("company_id = ? AND metric_type = ? AND year = ? AND month BETWEEN ? AND ?",
			companyID, t, year, fromMonth, toMonth).
		Scan(&sum).Error
	return sum, err
}

// GetAnnual returns the record for one key, or nil when none exists
func (r *MetricRepository) GetAnnual(ctx context.Context, companyID uint, t domain.MetricType, year int) (*domain.AnnualMetric, error) {
	var m domain.AnnualMetric
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND metric_type = ? AND year = ?", companyID, t, year).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// AnnualActualTotals sums annual actuals per metric type for one year
func (r *MetricRepository) AnnualActualTotals(ctx context.Context, companyID uint, year int) (map[domain.MetricType]float64, error) {
	var rows []struct {
		Type  domain.MetricType `gorm:"column:metric_type"`
		Total float64           `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Model(&domain.AnnualMetric{}).
		Select("metric_type, COALESCE(SUM(actual_value), 0) AS total").
		Where("company_id = ? AND year = ?", companyID, year).
		Group("metric_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.MetricType]float64, len(rows))
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}
