package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/parkgate/enterprise-api/internal/config"
	"github.com/parkgate/enterprise-api/internal/database"
	"github.com/parkgate/enterprise-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func testReportConfig() *config.ReportConfig {
	return &config.ReportConfig{
		CurrentYear:     2025,
		ComparisonYears: []int{2023, 2024, 2025, 2026},
	}
}

func createTestCompany(t *testing.T, db *gorm.DB, name string) *domain.Company {
	t.Helper()

	company := &domain.Company{
		Name:            name,
		LegalPerson:     "Jane Roe",
		MainProducts:    "Widgets",
		ProductModel:    "W-100",
		PartySecretary:  "Pat Lee",
		TotalInvestment: 5000,
		EmployeeCount:   80,
		RegisterDate:    "2020-01-15",
		CompletionDate:  "2022-06-30",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func addMonthly(t *testing.T, db *gorm.DB, companyID uint, metricType domain.MetricType, year, month int, planned, actual float64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.MonthlyMetric{
		CompanyID: companyID, Type: metricType, Year: year, Month: month,
		PlannedValue: planned, ActualValue: actual,
	}).Error)
}

func addAnnual(t *testing.T, db *gorm.DB, companyID uint, metricType domain.MetricType, year int, planned, actual float64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.AnnualMetric{
		CompanyID: companyID, Type: metricType, Year: year,
		PlannedValue: planned, ActualValue: actual,
	}).Error)
}
