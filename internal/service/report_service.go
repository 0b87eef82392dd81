package service

import (
	"context"
	"fmt"

	"github.com/parkgate/enterprise-api/internal/config"
	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
	"go.uber.org/zap"
)

// ReportService builds the economic, comparison, and comprehensive view models
type ReportService struct {
	companyRepo *repository.CompanyRepository
	metricRepo  *repository.MetricRepository
	cfg         *config.ReportConfig
	logger      *zap.Logger
}

func NewReportService(
	companyRepo *repository.CompanyRepository,
	metricRepo *repository.MetricRepository,
	cfg *config.ReportConfig,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		companyRepo: companyRepo,
		metricRepo:  metricRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Economic builds the 12-month table with per-type cumulative values, the
// quarterly aggregates for every metric type, and the chart series for the
// selected type.
func (s *ReportService) Economic(ctx context.Context, companyID uint, selected domain.MetricType, year int) (*domain.EconomicView, error) {
	if year == 0 {
		year = s.cfg.CurrentYear
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	// Month → cell per metric type. A month without a record shows zeros,
	// including its cumulative cell (legacy table contract).
	cells := make(map[domain.MetricType]map[int]domain.MonthCell, len(domain.AllMetricTypes))
	for _, t := range domain.AllMetricTypes {
		records, err := s.metricRepo.ListMonthly(ctx, companyID, t, year)
		if err != nil {
			return nil, fmt.Errorf("failed to list monthly records: %w", err)
		}

		byMonth := make(map[int]domain.MonthCell, len(records))
		var cumPlanned, cumActual float64
		for _, rec := range records {
			cumPlanned += rec.PlannedValue
			cumActual += rec.ActualValue
			byMonth[rec.Month] = domain.MonthCell{
				Planned:           rec.PlannedValue,
				Actual:            rec.ActualValue,
				CumulativePlanned: cumPlanned,
				CumulativeActual:  cumActual,
			}
		}
		cells[t] = byMonth
	}

	table := make([]domain.MonthRow, 0, 12)
	for month := 1; month <= 12; month++ {
		row := domain.MonthRow{Month: month, Metrics: make(map[domain.MetricType]domain.MonthCell, len(domain.AllMetricTypes))}
		for _, t := range domain.AllMetricTypes {
			row.Metrics[t] = cells[t][month]
		}
		table = append(table, row)
	}

	quarterly := make(map[domain.MetricType][]domain.QuarterCell, len(domain.AllMetricTypes))
	for _, t := range domain.AllMetricTypes {
		quarters := make([]domain.QuarterCell, 0, 4)
		for q := 1; q <= 4; q++ {
			sum, err := s.metricRepo.SumMonthly(ctx, companyID, t, year, quarterStartMonth(q), quarterEndMonth(q))
			if err != nil {
				return nil, fmt.Errorf("failed to aggregate quarter: %w", err)
			}
			quarters = append(quarters, domain.QuarterCell{
				Quarter:    q,
				PlannedSum: sum.Planned,
				ActualSum:  sum.Actual,
			})
		}
		quarterly[t] = quarters
	}

	chart := domain.ChartSeries{}
	for _, row := range table {
		cell := row.Metrics[selected]
		chart.Months = append(chart.Months, row.Month)
		chart.Planned = append(chart.Planned, cell.Planned)
		chart.Actual = append(chart.Actual, cell.Actual)
		chart.CumulativeActual = append(chart.CumulativeActual, cell.CumulativeActual)
	}

	return &domain.EconomicView{
		Company:   *company,
		Year:      year,
		Type:      selected,
		Table:     table,
		Quarterly: quarterly,
		Chart:     chart,
		Years:     s.cfg.ComparisonYears,
	}, nil
}

// AnnualComparison builds the planned/actual matrix over the configured
// comparison years. Years without a record show zeros.
func (s *ReportService) AnnualComparison(ctx context.Context, companyID uint) (*domain.AnnualComparisonView, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	comparison := make(map[domain.MetricType]map[int]domain.PlannedActual, len(domain.AllMetricTypes))
	for _, t := range domain.AllMetricTypes {
		byYear := make(map[int]domain.PlannedActual, len(s.cfg.ComparisonYears))
		for _, year := range s.cfg.ComparisonYears {
			record, err := s.metricRepo.GetAnnual(ctx, companyID, t, year)
			if err != nil {
				return nil, fmt.Errorf("failed to get annual record: %w", err)
			}
			if record != nil {
				byYear[year] = domain.PlannedActual{Planned: record.PlannedValue, Actual: record.ActualValue}
			} else {
				byYear[year] = domain.PlannedActual{}
			}
		}
		comparison[t] = byYear
	}

	return &domain.AnnualComparisonView{
		Company:    *company,
		Years:      s.cfg.ComparisonYears,
		Comparison: comparison,
	}, nil
}

// Comprehensive builds the month and year-to-date values for the selected
// month of the current reporting year, with growth rates against the same
// period one year prior. Missing records count as zero.
func (s *ReportService) Comprehensive(ctx context.Context, companyID uint, month int) (*domain.ComprehensiveView, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	year := s.cfg.CurrentYear
	priorYear := year - 1

	metrics := make(map[domain.MetricType]domain.ComprehensiveEntry, len(domain.AllMetricTypes))
	for _, t := range domain.AllMetricTypes {
		cur, err := s.monthActual(ctx, companyID, t, year, month)
		if err != nil {
			return nil, err
		}
		prev, err := s.monthActual(ctx, companyID, t, priorYear, month)
		if err != nil {
			return nil, err
		}

		curSum, err := s.metricRepo.SumMonthly(ctx, companyID, t, year, 1, month)
		if err != nil {
			return nil, fmt.Errorf("failed to sum current year: %w", err)
		}
		prevSum, err := s.metricRepo.SumMonthly(ctx, companyID, t, priorYear, 1, month)
		if err != nil {
			return nil, fmt.Errorf("failed to sum prior year: %w", err)
		}

		metrics[t] = domain.ComprehensiveEntry{
			CurrentMonthValue:    cur,
			CumulativeValue:      curSum.Actual,
			MonthGrowthRate:      GrowthRate(cur, prev),
			CumulativeGrowthRate: GrowthRate(curSum.Actual, prevSum.Actual),
		}
	}

	return &domain.ComprehensiveView{
		Company: *company,
		Year:    year,
		Month:   month,
		Metrics: metrics,
	}, nil
}

func (s *ReportService) monthActual(ctx context.Context, companyID uint, t domain.MetricType, year, month int) (float64, error) {
	record, err := s.metricRepo.GetMonthly(ctx, companyID, t, year, month)
	if err != nil {
		return 0, fmt.Errorf("failed to get monthly record: %w", err)
	}
	if record == nil {
		return 0, nil
	}
	return record.ActualValue, nil
}

func quarterStartMonth(q int) int { return (q-1)*3 + 1 }
func quarterEndMonth(q int) int   { return q * 3 }
