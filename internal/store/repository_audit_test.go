package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuditRepository(db, db.logger)

	entry := &models.AuditLogEntry{
		UserID:    7,
		Action:    models.ActionLoginSucceeded,
		IPAddress: "10.0.0.1",
		Details:   models.JSONMap{"method": "password"},
		Severity:  models.SeverityInfo,
		CreatedAt: testNow,
	}

	mock.ExpectQuery("INSERT INTO audit_logs").
		WithArgs(int64(7), models.ActionLoginSucceeded, "", "", "10.0.0.1", "", `{"method":"password"}`, "info", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(99)))

	require.NoError(t, repo.Create(testContext(), entry))
	assert.Equal(t, int64(99), entry.ID)
}

func TestAuditRepository_Create_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuditRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO audit_logs").WillReturnError(errors.New("down"))

	err := repo.Create(testContext(), &models.AuditLogEntry{Action: models.ActionLogout})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
