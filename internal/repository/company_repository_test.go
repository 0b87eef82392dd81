package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
)

func TestCompanyRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCompanyRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyRepository_ListOverviewContactPhone(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCompanyRepository(db)
	ctx := context.Background()

	withPhone := createTestCompany(t, db, "Acme")
	withoutPhone := createTestCompany(t, db, "Globex")

	require.NoError(t, db.Create(&domain.Contact{
		CompanyID: withPhone.ID, Role: domain.ContactRoleDaily,
		Name: "Dana", Phone: "13700137000", IsPrimary: true,
	}).Error)
	// Non-primary daily contacts do not surface on the dashboard
	require.NoError(t, db.Create(&domain.Contact{
		CompanyID: withoutPhone.ID, Role: domain.ContactRoleDaily,
		Name: "Sam", Phone: "13600136000", IsPrimary: false,
	}).Error)

	overviews, err := repo.ListOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overviews, 2)

	byName := make(map[string]domain.CompanyOverview, len(overviews))
	for _, o := range overviews {
		byName[o.Name] = o
	}
	assert.Equal(t, "13700137000", byName["Acme"].ContactPhone)
	assert.Empty(t, byName["Globex"].ContactPhone)
}

func TestCompanyRepository_ListSummariesOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCompanyRepository(db)

	createTestCompany(t, db, "Zephyr")
	createTestCompany(t, db, "Acme")
	createTestCompany(t, db, "Midway")

	summaries, err := repo.ListSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "Acme", summaries[0].Name)
	assert.Equal(t, "Midway", summaries[1].Name)
	assert.Equal(t, "Zephyr", summaries[2].Name)
}

func TestCompanyRepository_ListByIDsSkipsMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCompanyRepository(db)

	a := createTestCompany(t, db, "Acme")
	b := createTestCompany(t, db, "Globex")

	companies, err := repo.ListByIDs(context.Background(), []uint{b.ID, 999, a.ID})
	require.NoError(t, err)
	assert.Len(t, companies, 2)

	none, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCompanyRepository_DeleteLeavesChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCompanyRepository(db)
	ctx := context.Background()

	company := createTestCompany(t, db, "Acme")
	require.NoError(t, db.Create(&domain.Contact{
		CompanyID: company.ID, Role: domain.ContactRoleLegal, Name: "Jane Roe",
	}).Error)
	require.NoError(t, db.Create(&domain.MonthlyMetric{
		CompanyID: company.ID, Type: domain.MetricOutput, Year: 2025, Month: 1, ActualValue: 5,
	}).Error)

	require.NoError(t, repo.Delete(ctx, company.ID))

	_, err := repo.GetByID(ctx, company.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Child rows survive the delete and remain queryable by company id
	var contactCount, metricCount int64
	require.NoError(t, db.Model(&domain.Contact{}).Where("company_id = ?", company.ID).Count(&contactCount).Error)
	require.NoError(t, db.Model(&domain.MonthlyMetric{}).Where("company_id = ?", company.ID).Count(&metricCount).Error)
	assert.EqualValues(t, 1, contactCount)
	assert.EqualValues(t, 1, metricCount)
}
