package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

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

func createTestCompany(t *testing.T, db *gorm.DB, name string) *domain.Company {
	t.Helper()

	company := &domain.Company{
		Name:            name,
		LegalPerson:     "Jane Roe",
		MainProducts:    "Widgets",
		TotalInvestment: 5000,
		EmployeeCount:   80,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}
