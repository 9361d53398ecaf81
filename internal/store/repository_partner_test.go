package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partnerRow() *sqlmock.Rows {
	return sqlmock.NewRows(partnerColumns).
		AddRow(int64(5), "Tax Office", "key-1", "sealed", "active", true, testNow)
}

func TestPartnerRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPartnerRepository(db, db.logger)

	partner := models.GovernmentPartner{
		Name:            "Tax Office",
		APIKey:          "key-1",
		APISecret:       "clear",
		APISecretSealed: "sealed",
		Status:          models.PartnerStatusPending,
		IsActive:        true,
		CreatedAt:       testNow,
	}

	mock.ExpectQuery("INSERT INTO government_partners").
		WithArgs("Tax Office", "key-1", "sealed", "pending", true, testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	created, err := repo.Create(testContext(), partner)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, "clear", created.APISecret)
}

func TestPartnerRepository_Create_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPartnerRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO government_partners").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(testContext(), models.GovernmentPartner{Name: "Tax Office"})
	assert.ErrorIs(t, err, ErrPartnerAlreadyExists)
}

func TestPartnerRepository_FindByAPIKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPartnerRepository(db, db.logger)

	mock.ExpectQuery("SELECT id, name, api_key").
		WithArgs("key-1").
		WillReturnRows(partnerRow())

	partner, err := repo.FindByAPIKey(testContext(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), partner.ID)
	assert.Equal(t, "sealed", partner.APISecretSealed)
	assert.Empty(t, partner.APISecret)
	assert.True(t, partner.CanAuthenticate())
}

func TestPartnerRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPartnerRepository(db, db.logger)

	mock.ExpectQuery("SELECT id, name, api_key").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(partnerColumns))

	_, err := repo.FindByID(testContext(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPartnerRepository_UpdateStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPartnerRepository(db, db.logger)

	mock.ExpectQuery("UPDATE government_partners SET status").
		WithArgs("active", int64(5)).
		WillReturnRows(partnerRow())

	partner, err := repo.UpdateStatus(testContext(), 5, models.PartnerStatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.PartnerStatusActive, partner.Status)

	mock.ExpectQuery("UPDATE government_partners SET status").
		WillReturnRows(sqlmock.NewRows(partnerColumns))

	_, err = repo.UpdateStatus(testContext(), 6, models.PartnerStatusSuspended)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPartnerRepository_Services(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPartnerRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO partner_services").
		WithArgs(int64(5), "Benefits", `["identity","address"]`, true, testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))

	service, err := repo.CreateService(testContext(), models.PartnerService{
		PartnerID:      5,
		Name:           "Benefits",
		RequiredScopes: models.StringList{"identity", "address"},
		IsActive:       true,
		CreatedAt:      testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), service.ID)

	mock.ExpectQuery("SELECT id, partner_id, name, required_scopes").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(int64(8), int64(5), "Benefits", []byte(`["identity","address"]`), true, testNow))

	found, err := repo.FindServiceByID(testContext(), 8)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"identity", "address"}, found.RequiredScopes)

	mock.ExpectQuery("INSERT INTO partner_services").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	_, err = repo.CreateService(testContext(), models.PartnerService{PartnerID: 5, Name: "Benefits"})
	assert.ErrorIs(t, err, ErrServiceAlreadyExists)
}
