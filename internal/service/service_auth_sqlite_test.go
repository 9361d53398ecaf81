package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/mock"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSQLiteUsers(t *testing.T) store.UserRepository {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "identity.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := store.NewConnect(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return store.NewUserRepository(db, logger.Nop())
}

func TestAuthService_LoginBurstAgainstSQLite(t *testing.T) {
	const guesses = 20
	users := newSQLiteUsers(t)

	seed := testUser()
	seed.UserID = 0
	user, _, err := users.Create(context.Background(), seed, testKey())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialManager(ctrl)
	var verified atomic.Int32
	credentials.EXPECT().VerifyPassword(gomock.Any(), user.PasswordSalt, user.PasswordHash).
		DoAndReturn(func(password, _, _ string) (bool, error) {
			verified.Add(1)
			return password == "correct1horse", nil
		}).AnyTimes()

	audit, _ := newTestAudit()
	cryptoPool, _ := testPools()
	svc := newAuthService(authDeps{
		userRepository: users,
		credentials:    credentials,
		keyService:     &fakeKeyService{},
		tokenService:   NewTokenService(users, testAppConfig(), logger.Nop()),
		otpService:     &fakeOTPService{},
		auditService:   audit,
		cryptoPool:     cryptoPool,
	}, testAppConfig(), logger.Nop())
	svc.now = fixedNow
	svc.passwords.now = fixedNow

	var (
		wg      sync.WaitGroup
		locked  atomic.Int32
		invalid atomic.Int32
	)
	start := make(chan struct{})
	for range guesses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "wrong-guess"})
			switch {
			case errors.Is(err, ErrAccountLocked):
				locked.Add(1)
			case errors.Is(err, ErrInvalidCredentials):
				invalid.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	threshold := int32(testAppConfig().LockoutThreshold)
	assert.Equal(t, threshold, verified.Load())
	assert.Equal(t, threshold, invalid.Load())
	assert.Equal(t, guesses-threshold, locked.Load())

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
	assert.ErrorIs(t, err, ErrAccountLocked)
	assert.Equal(t, threshold, verified.Load())
}
