package store

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOTPRepository(db, db.logger)

	otp := models.OTPCode{
		UserID:    7,
		Code:      "012345",
		Type:      models.OTPTypeEmail,
		Purpose:   models.OTPPurposeLogin,
		ExpiresAt: testNow.Add(10 * time.Minute),
		CreatedAt: testNow,
	}

	mock.ExpectQuery("INSERT INTO otp_codes").
		WithArgs(int64(7), "012345", "email", "login", otp.ExpiresAt, testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	created, err := repo.Create(testContext(), otp)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestOTPRepository_Consume(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  error
	}{
		{name: "consumed", affected: 1, want: true},
		{name: "no matching code", affected: 0, want: false},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewOTPRepository(db, db.logger)

			exp := mock.ExpectExec("UPDATE otp_codes SET used_at").
				WithArgs(testNow, int64(7), "012345", "login", testNow)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			ok, err := repo.Consume(testContext(), 7, "012345", models.OTPPurposeLogin, testNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
