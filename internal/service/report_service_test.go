package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
	"github.com/parkgate/enterprise-api/internal/service"
)

func newReportService(t *testing.T) (*service.ReportService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := service.NewReportService(
		repository.NewCompanyRepository(db),
		repository.NewMetricRepository(db),
		testReportConfig(),
		zap.NewNop(),
	)
	return svc, db
}

func TestReportService_EconomicTable(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()
	company := createTestCompany(t, db, "Acme")

	addMonthly(t, db, company.ID, domain.MetricOutput, 2025, 1, 100, 90)
	addMonthly(t, db, company.ID, domain.MetricOutput, 2025, 2, 110, 105)
	// March has no record; April resumes the cumulative run
	addMonthly(t, db, company.ID, domain.MetricOutput, 2025, 4, 120, 115)

	view, err := svc.Economic(ctx, company.ID, domain.MetricOutput, 2025)
	require.NoError(t, err)

	require.Len(t, view.Table, 12)
	assert.Equal(t, 2025, view.Year)
	assert.Equal(t, domain.MetricOutput, view.Type)

	jan := view.Table[0].Metrics[domain.MetricOutput]
	assert.Equal(t, 100.0, jan.Planned)
	assert.Equal(t, 90.0, jan.CumulativeActual)

	feb := view.Table[1].Metrics[domain.MetricOutput]
	assert.Equal(t, 210.0, feb.CumulativePlanned)
	assert.Equal(t, 195.0, feb.CumulativeActual)

	// A month without a record shows zeros across the board
	mar := view.Table[2].Metrics[domain.MetricOutput]
	assert.Equal(t, domain.MonthCell{}, mar)

	apr := view.Table[3].Metrics[domain.MetricOutput]
	assert.Equal(t, 330.0, apr.CumulativePlanned)
	assert.Equal(t, 310.0, apr.CumulativeActual)

	// First quarter sums only the two recorded months
	q1 := view.Quarterly[domain.MetricOutput][0]
	assert.Equal(t, 1, q1.Quarter)
	assert.Equal(t, 210.0, q1.PlannedSum)
	assert.Equal(t, 195.0, q1.ActualSum)

	q2 := view.Quarterly[domain.MetricOutput][1]
	assert.Equal(t, 120.0, q2.PlannedSum)

	require.Len(t, view.Chart.Months, 12)
	assert.Equal(t, 90.0, view.Chart.Actual[0])
	assert.Equal(t, 0.0, view.Chart.Actual[2])
	assert.Equal(t, []int{2023, 2024, 2025, 2026}, view.Years)
}

func TestReportService_EconomicDefaultsYear(t *testing.T) {
	svc, db := newReportService(t)
	company := createTestCompany(t, db, "Acme")

	view, err := svc.Economic(context.Background(), company.ID, domain.MetricTax, 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, view.Year)
}

func TestReportService_EconomicUnknownCompany(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.Economic(context.Background(), 999, domain.MetricOutput, 2025)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportService_AnnualComparison(t *testing.T) {
	svc, db := newReportService(t)
	company := createTestCompany(t, db, "Acme")

	addAnnual(t, db, company.ID, domain.MetricOutput, 2024, 800, 900)
	addAnnual(t, db, company.ID, domain.MetricOutput, 2025, 1000, 1100)

	view, err := svc.AnnualComparison(context.Background(), company.ID)
	require.NoError(t, err)

	assert.Equal(t, []int{2023, 2024, 2025, 2026}, view.Years)

	output := view.Comparison[domain.MetricOutput]
	assert.Equal(t, domain.PlannedActual{Planned: 800, Actual: 900}, output[2024])
	assert.Equal(t, domain.PlannedActual{Planned: 1000, Actual: 1100}, output[2025])
	// Years without a record show zeros rather than being omitted
	assert.Equal(t, domain.PlannedActual{}, output[2023])
	assert.Equal(t, domain.PlannedActual{}, output[2026])
}

func TestReportService_Comprehensive(t *testing.T) {
	svc, db := newReportService(t)
	company := createTestCompany(t, db, "Acme")

	// Prior year March plus current year January through March
	addMonthly(t, db, company.ID, domain.MetricOutput, 2024, 3, 0, 100)
	addMonthly(t, db, company.ID, domain.MetricOutput, 2025, 1, 0, 50)
	addMonthly(t, db, company.ID, domain.MetricOutput, 2025, 2, 0, 60)
	addMonthly(t, db, company.ID, domain.MetricOutput, 2025, 3, 0, 150)

	// Tax has current-year data but no prior-year baseline
	addMonthly(t, db, company.ID, domain.MetricTax, 2025, 3, 0, 80)

	view, err := svc.Comprehensive(context.Background(), company.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2025, view.Year)
	assert.Equal(t, 3, view.Month)

	output := view.Metrics[domain.MetricOutput]
	assert.Equal(t, 150.0, output.CurrentMonthValue)
	assert.Equal(t, 260.0, output.CumulativeValue)
	// 100 -> 150 is a 50 percent month-over-month gain
	assert.InDelta(t, 50.0, output.MonthGrowthRate, 0.0001)
	// Prior cumulative is 100, current is 260
	assert.InDelta(t, 160.0, output.CumulativeGrowthRate, 0.0001)

	// A zero prior with a positive current reports a flat 100 percent
	tax := view.Metrics[domain.MetricTax]
	assert.Equal(t, 80.0, tax.CurrentMonthValue)
	assert.InDelta(t, 100.0, tax.MonthGrowthRate, 0.0001)
	assert.InDelta(t, 100.0, tax.CumulativeGrowthRate, 0.0001)

	// Metrics with no data at all stay flat zero
	investment := view.Metrics[domain.MetricInvestment]
	assert.Equal(t, 0.0, investment.CurrentMonthValue)
	assert.Equal(t, 0.0, investment.MonthGrowthRate)
}
