package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
)

func TestMetricRepository_UpsertMonthlyOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMetricRepository(db)
	company := createTestCompany(t, db, "Acme")
	ctx := context.Background()

	first := &domain.MonthlyMetric{
		CompanyID: company.ID, Type: domain.MetricOutput,
		Year: 2025, Month: 3, PlannedValue: 100, ActualValue: 90,
	}
	require.NoError(t, repo.UpsertMonthly(ctx, first))

	second := &domain.MonthlyMetric{
		CompanyID: company.ID, Type: domain.MetricOutput,
		Year: 2025, Month: 3, PlannedValue: 120, ActualValue: 110,
	}
	require.NoError(t, repo.UpsertMonthly(ctx, second))

	var count int64
	require.NoError(t, db.Model(&domain.MonthlyMetric{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := repo.GetMonthly(ctx, company.ID, domain.MetricOutput, 2025, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 120.0, got.PlannedValue)
	assert.Equal(t, 110.0, got.ActualValue)
}

func TestMetricRepository_UpsertAnnualOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMetricRepository(db)
	company := createTestCompany(t, db, "Acme")
	ctx := context.Background()

	require.NoError(t, repo.UpsertAnnual(ctx, &domain.AnnualMetric{
		CompanyID: company.ID, Type: domain.MetricTax, Year: 2025, PlannedValue: 50, ActualValue: 40,
	}))
	require.NoError(t, repo.UpsertAnnual(ctx, &domain.AnnualMetric{
		CompanyID: company.ID, Type: domain.MetricTax, Year: 2025, PlannedValue: 55, ActualValue: 48,
	}))

	var count int64
	require.NoError(t, db.Model(&domain.AnnualMetric{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := repo.GetAnnual(ctx, company.ID, domain.MetricTax, 2025)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 55.0, got.PlannedValue)
	assert.Equal(t, 48.0, got.ActualValue)
}

func TestMetricRepository_GetMonthlyAbsentReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMetricRepository(db)

	got, err := repo.GetMonthly(context.Background(), 999, domain.MetricOutput, 2025, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMetricRepository_SumMonthlyRange(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMetricRepository(db)
	company := createTestCompany(t, db, "Acme")
	ctx := context.Background()

	// Only two of the three second-quarter months have records
	require.NoError(t, repo.UpsertMonthly(ctx, &domain.MonthlyMetric{
		CompanyID: company.ID, Type: domain.MetricOutput, Year: 2025, Month: 4, PlannedValue: 10, ActualValue: 8,
	}))
	require.NoError(t, repo.UpsertMonthly(ctx, &domain.MonthlyMetric{
		CompanyID: company.ID, Type: domain.MetricOutput, Year: 2025, Month: 6, PlannedValue: 20, ActualValue: 18,
	}))

	sum, err := repo.SumMonthly(ctx, company.ID, domain.MetricOutput, 2025, 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 30.0, sum.Planned)
	assert.Equal(t, 26.0, sum.Actual)

	// A range with no records sums to zero
	empty, err := repo.SumMonthly(ctx, company.ID, domain.MetricOutput, 2025, 7, 9)
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Planned)
	assert.Equal(t, 0.0, empty.Actual)
}

func TestMetricRepository_ListMonthlyOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMetricRepository(db)
	company := createTestCompany(t, db, "Acme")
	ctx := context.Background()

	for _, month := range []int{5, 1, 3} {
		require.NoError(t, repo.UpsertMonthly(ctx, &domain.MonthlyMetric{
			CompanyID: company.ID, Type: domain.MetricCapacity, Year: 2025, Month: month,
			PlannedValue: float64(month), ActualValue: float64(month),
		}))
	}

	records, err := repo.ListMonthly(ctx, company.ID, domain.MetricCapacity, 2025)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Month)
	assert.Equal(t, 3, records[1].Month)
	assert.Equal(t, 5, records[2].Month)
}

func TestMetricRepository_AnnualActualTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMetricRepository(db)
	company := createTestCompany(t, db, "Acme")
	ctx := context.Background()

	require.NoError(t, repo.UpsertAnnual(ctx, &domain.AnnualMetric{
		CompanyID: company.ID, Type: domain.MetricOutput, Year: 2025, PlannedValue: 100, ActualValue: 95,
	}))
	require.NoError(t, repo.UpsertAnnual(ctx, &domain.AnnualMetric{
		CompanyID: company.ID, Type: domain.MetricTax, Year: 2025, PlannedValue: 10, ActualValue: 12,
	}))
	// A different year stays out of the totals
	require.NoError(t, repo.UpsertAnnual(ctx, &domain.AnnualMetric{
		CompanyID: company.ID, Type: domain.MetricOutput, Year: 2024, PlannedValue: 80, ActualValue: 70,
	}))

	totals, err := repo.AnnualActualTotals(ctx, company.ID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 95.0, totals[domain.MetricOutput])
	assert.Equal(t, 12.0, totals[domain.MetricTax])
	assert.NotContains(t, totals, domain.MetricInvestment)
}
