package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/repository"
)

func TestContactRepository_ListDirectoryFiltersDailyToPrimary(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	company := createTestCompany(t, db, "Acme")
	contacts := []domain.Contact{
		{CompanyID: company.ID, Role: domain.ContactRoleDaily, Name: "Primary Dana", Phone: "111", IsPrimary: true},
		{CompanyID: company.ID, Role: domain.ContactRoleDaily, Name: "Backup Bob", Phone: "222", IsPrimary: false},
		{CompanyID: company.ID, Role: domain.ContactRoleLegal, Name: "Lawyer One", Phone: "333", IsPrimary: false},
		{CompanyID: company.ID, Role: domain.ContactRoleLegal, Name: "Lawyer Two", Phone: "444", IsPrimary: false},
	}
	require.NoError(t, db.Create(&contacts).Error)

	daily, err := repo.ListDirectory(ctx, domain.ContactRoleDaily)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "Primary Dana", daily[0].Name)
	assert.Equal(t, "Acme", daily[0].CompanyName)

	// Legal entries are listed regardless of the primary flag
	legal, err := repo.ListDirectory(ctx, domain.ContactRoleLegal)
	require.NoError(t, err)
	assert.Len(t, legal, 2)
}

func TestContactRepository_FirstByCompanyAndRole(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	company := createTestCompany(t, db, "Acme")
	contacts := []domain.Contact{
		{CompanyID: company.ID, Role: domain.ContactRoleSecretary, Name: "First Secretary"},
		{CompanyID: company.ID, Role: domain.ContactRoleSecretary, Name: "Second Secretary"},
		{CompanyID: company.ID, Role: domain.ContactRoleDaily, Name: "Non Primary", IsPrimary: false},
	}
	require.NoError(t, db.Create(&contacts).Error)

	got, err := repo.FirstByCompanyAndRole(ctx, company.ID, domain.ContactRoleSecretary, false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First Secretary", got.Name)

	// No primary daily contact exists, so the primary-only lookup is empty
	none, err := repo.FirstByCompanyAndRole(ctx, company.ID, domain.ContactRoleDaily, true)
	require.NoError(t, err)
	assert.Nil(t, none)

	missing, err := repo.FirstByCompanyAndRole(ctx, company.ID, domain.ContactRoleLegal, false)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContactRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	company := createTestCompany(t, db, "Acme")
	contact := &domain.Contact{CompanyID: company.ID, Role: domain.ContactRoleLegal, Name: "Before", Phone: "111"}
	require.NoError(t, repo.Create(ctx, contact))

	contact.Name = "After"
	contact.Phone = "999"
	require.NoError(t, repo.Update(ctx, contact))

	got, err := repo.GetByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "999", got.Phone)

	require.NoError(t, repo.Delete(ctx, contact.ID))
	_, err = repo.GetByID(ctx, contact.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
