package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/mock"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	svc         *authService
	users       *mock.MockUserRepository
	credentials *mock.MockCredentialManager
	keys        *fakeKeyService
	otps        *fakeOTPService
	tokens      TokenService
	queue       *recordingQueue
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	credentials := mock.NewMockCredentialManager(ctrl)
	keys := &fakeKeyService{}
	otps := &fakeOTPService{}
	tokens := NewTokenService(users, testAppConfig(), logger.Nop())
	audit, queue := newTestAudit()
	cryptoPool, _ := testPools()

	svc := newAuthService(authDeps{
		userRepository: users,
		credentials:    credentials,
		keyService:     keys,
		tokenService:   tokens,
		otpService:     otps,
		auditService:   audit,
		cryptoPool:     cryptoPool,
	}, testAppConfig(), logger.Nop())
	svc.now = fixedNow
	svc.passwords.now = fixedNow

	return authFixture{
		svc:         svc,
		users:       users,
		credentials: credentials,
		keys:        keys,
		otps:        otps,
		tokens:      tokens,
		queue:       queue,
	}
}

func (f authFixture) expectHash(password string) {
	f.credentials.EXPECT().GenerateSalt().Return("new-salt", nil)
	f.credentials.EXPECT().HashPassword(password, "new-salt").Return("new-hash", nil)
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register(t *testing.T) {
	f := newAuthFixture(t)

	f.expectHash("correct1horse")
	f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User, key models.EncryptionKey) (models.User, models.EncryptionKey, error) {
			assert.Equal(t, "ada@example.com", user.Email)
			assert.Equal(t, models.RoleFree, user.Role)
			assert.Equal(t, "new-hash", user.PasswordHash)
			assert.Equal(t, "new-salt", user.PasswordSalt)
			assert.NotEmpty(t, user.UUID)
			assert.Equal(t, testKey().PublicKey, key.PublicKey)

			user.UserID = 42
			key.ID = 7
			return user, key, nil
		})

	user, token, err := f.svc.Register(context.Background(), models.RegisterRequest{
		Email:    "  Ada@Example.com ",
		Password: "correct1horse",
		Name:     "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.NotEmpty(t, token.String())
	assert.Equal(t, []string{models.ActionUserRegistered}, f.queue.actions())
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	f.expectHash("correct1horse")
	f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, models.EncryptionKey{}, store.ErrEmailAlreadyExists)

	_, _, err := f.svc.Register(context.Background(), models.RegisterRequest{Email: "ada@example.com", Password: "correct1horse"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Empty(t, f.queue.actions())
}

func TestAuthService_RegisterKeyFailureCreatesNothing(t *testing.T) {
	f := newAuthFixture(t)

	f.expectHash("correct1horse")
	f.keys.generateFn = func(context.Context, string) (models.EncryptionKey, error) {
		return models.EncryptionKey{}, errors.New("keygen failed")
	}

	_, _, err := f.svc.Register(context.Background(), models.RegisterRequest{Email: "ada@example.com", Password: "correct1horse"})
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login(t *testing.T) {
	user := testUser()

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
		f.credentials.EXPECT().VerifyPassword("correct1horse", user.PasswordSalt, user.PasswordHash).Return(true, nil)
		f.users.EXPECT().ResetLoginAttempts(gomock.Any(), user.UserID, testNow).Return(nil)

		res, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
		require.NoError(t, err)
		assert.False(t, res.OTPRequired)
		assert.NotEmpty(t, res.Token.String())
		assert.Equal(t, []string{models.ActionLoginSucceeded}, f.queue.actions())
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNotFound)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, []string{models.ActionLoginFailed}, f.queue.actions())
	})

	t.Run("locked account skips password check", func(t *testing.T) {
		f := newAuthFixture(t)
		locked := user
		until := testNow.Add(10 * time.Minute)
		locked.LockedUntil = &until

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(locked, nil)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
		assert.ErrorIs(t, err, ErrAccountLocked)
		assert.Equal(t, []string{models.ActionLoginFailed}, f.queue.actions())
	})

	t.Run("lock taken after the read skips password check", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.users.EXPECT().ClaimLoginAttempt(gomock.Any(), user.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.LoginFailure{}, store.ErrAccountLocked)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
		assert.ErrorIs(t, err, ErrAccountLocked)
		assert.Equal(t, "locked", f.queue.last().Details["reason"])
	})

	t.Run("claim failure aborts before verification", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.users.EXPECT().ClaimLoginAttempt(gomock.Any(), user.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.LoginFailure{}, errors.New("db down"))

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("expired lock is ignored", func(t *testing.T) {
		f := newAuthFixture(t)
		stale := user
		until := testNow.Add(-time.Minute)
		stale.LockedUntil = &until

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(stale, nil)
		expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
		f.credentials.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.users.EXPECT().ResetLoginAttempts(gomock.Any(), user.UserID, testNow).Return(nil)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
		require.NoError(t, err)
	})

	t.Run("wrong password counts a failure", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
		f.credentials.EXPECT().VerifyPassword("wrong", user.PasswordSalt, user.PasswordHash).Return(false, nil)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, []string{models.ActionLoginFailed}, f.queue.actions())
	})

	t.Run("threshold failure locks the account", func(t *testing.T) {
		f := newAuthFixture(t)
		until := testNow.Add(30 * time.Minute)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 3, LockedUntil: &until})
		f.credentials.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, []string{models.ActionLoginFailed, models.ActionAccountLocked}, f.queue.actions())
		assert.Equal(t, models.SeverityCritical, f.queue.last().Severity)
	})

	t.Run("malformed stored credentials count as mismatch", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
		f.credentials.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, crypto.ErrVerificationFailed)

		_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

// TestAuthService_LoginConcurrentGuesses drives a burst of wrong passwords
// against a counter shared the way the datastore shares it: attempts past
// the threshold are refused before PBKDF2 runs.
func TestAuthService_LoginConcurrentGuesses(t *testing.T) {
	const guesses = 20
	user := testUser()
	f := newAuthFixture(t)

	var (
		mu       sync.Mutex
		attempts int
	)
	f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil).Times(guesses)
	f.users.EXPECT().ClaimLoginAttempt(gomock.Any(), user.UserID, 3, gomock.Any(), testNow).
		DoAndReturn(func(_ context.Context, _ int64, threshold int, lockUntil, _ time.Time) (models.LoginFailure, error) {
			mu.Lock()
			defer mu.Unlock()
			if attempts >= threshold {
				return models.LoginFailure{}, store.ErrAccountLocked
			}
			attempts++
			claim := models.LoginFailure{LoginAttempts: attempts}
			if attempts >= threshold {
				claim.LockedUntil = &lockUntil
			}
			return claim, nil
		}).Times(guesses)

	var verified atomic.Int32
	f.credentials.EXPECT().VerifyPassword("wrong", user.PasswordSalt, user.PasswordHash).
		DoAndReturn(func(string, string, string) (bool, error) {
			verified.Add(1)
			return false, nil
		}).MaxTimes(guesses)

	var (
		wg     sync.WaitGroup
		locked atomic.Int32
	)
	for range guesses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "wrong"})
			if errors.Is(err, ErrAccountLocked) {
				locked.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), verified.Load())
	assert.Equal(t, int32(guesses-3), locked.Load())
}

func TestAuthService_LoginWithTwoFactor(t *testing.T) {
	user := testUser()
	user.TwoFactorEnabled = true

	f := newAuthFixture(t)

	f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
	f.credentials.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.users.EXPECT().ResetLoginAttempts(gomock.Any(), user.UserID, testNow).Return(nil)

	res, err := f.svc.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "correct1horse"})
	require.NoError(t, err)
	require.True(t, res.OTPRequired)
	require.NotEmpty(t, res.ChallengeToken)
	assert.Nil(t, res.Token.Token)
	assert.Equal(t, []models.OTPPurpose{models.OTPPurposeLogin}, f.otps.created)

	_, err = f.tokens.Verify(res.ChallengeToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken, "challenge tokens must not open sessions")

	t.Run("wrong code", func(t *testing.T) {
		_, err := f.svc.LoginOTP(context.Background(), models.LoginOTPRequest{ChallengeToken: res.ChallengeToken, Code: "000000"})
		assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
	})

	t.Run("right code", func(t *testing.T) {
		f.users.EXPECT().FindByID(gomock.Any(), user.UserID).Return(user, nil)

		done, err := f.svc.LoginOTP(context.Background(), models.LoginOTPRequest{ChallengeToken: res.ChallengeToken, Code: "123456"})
		require.NoError(t, err)
		assert.NotEmpty(t, done.Token.String())
	})

	t.Run("epoch moved since challenge", func(t *testing.T) {
		bumped := user
		bumped.TokenVersion++
		f.users.EXPECT().FindByID(gomock.Any(), user.UserID).Return(bumped, nil)

		_, err := f.svc.LoginOTP(context.Background(), models.LoginOTPRequest{ChallengeToken: res.ChallengeToken, Code: "123456"})
		assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	})
}

// ---------------------------------------------------------------------------
// Sessions and OTP
// ---------------------------------------------------------------------------

func TestAuthService_LogoutAll(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().BumpTokenVersion(gomock.Any(), int64(42), testNow).Return(int64(4), nil)
	require.NoError(t, f.svc.LogoutAll(context.Background(), 42))
	assert.Equal(t, []string{models.ActionLogoutAll}, f.queue.actions())

	f.users.EXPECT().BumpTokenVersion(gomock.Any(), int64(9), testNow).Return(int64(0), store.ErrNotFound)
	assert.ErrorIs(t, f.svc.LogoutAll(context.Background(), 9), ErrResourceNotFound)
}

func TestAuthService_RequestAndVerifyOTP(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindByID(gomock.Any(), int64(42)).Return(testUser(), nil)
	err := f.svc.RequestOTP(context.Background(), 42, models.OTPRequest{Type: models.OTPTypeSMS, Purpose: models.OTPPurposeVerification})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.VerifyOTP(context.Background(), 42, models.OTPVerifyRequest{Code: "999999", Purpose: models.OTPPurposeVerification}), ErrInvalidOrExpiredOTP)
	require.NoError(t, f.svc.VerifyOTP(context.Background(), 42, models.OTPVerifyRequest{Code: "123456", Purpose: models.OTPPurposeVerification}))

	assert.Equal(t, []string{models.ActionOTPIssued, models.ActionOTPRejected, models.ActionOTPVerified}, f.queue.actions())
}

func TestAuthService_SetTwoFactor(t *testing.T) {
	user := testUser()
	f := newAuthFixture(t)

	f.users.EXPECT().FindByID(gomock.Any(), user.UserID).Return(user, nil).Times(2)
	expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
	f.credentials.EXPECT().VerifyPassword("wrong", gomock.Any(), gomock.Any()).Return(false, nil)
	expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 2})
	f.credentials.EXPECT().VerifyPassword("correct1horse", gomock.Any(), gomock.Any()).Return(true, nil)
	f.users.EXPECT().ResetLoginAttempts(gomock.Any(), user.UserID, testNow).Return(nil)
	f.users.EXPECT().SetTwoFactor(gomock.Any(), user.UserID, true, testNow).Return(nil)

	err := f.svc.SetTwoFactor(context.Background(), user.UserID, models.TwoFactorRequest{Enabled: true, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = f.svc.SetTwoFactor(context.Background(), user.UserID, models.TwoFactorRequest{Enabled: true, Password: "correct1horse"})
	require.NoError(t, err)
	assert.Equal(t, []string{models.ActionLoginFailed, models.ActionTwoFactorChanged}, f.queue.actions())
}

func TestAuthService_SetTwoFactorLocked(t *testing.T) {
	user := testUser()
	f := newAuthFixture(t)

	f.users.EXPECT().FindByID(gomock.Any(), user.UserID).Return(user, nil)
	f.users.EXPECT().ClaimLoginAttempt(gomock.Any(), user.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.LoginFailure{}, store.ErrAccountLocked)

	err := f.svc.SetTwoFactor(context.Background(), user.UserID, models.TwoFactorRequest{Enabled: false, Password: "correct1horse"})
	assert.ErrorIs(t, err, ErrAccountLocked)
	assert.Equal(t, "two_factor", f.queue.last().Details["operation"])
}

// ---------------------------------------------------------------------------
// Password change and reset
// ---------------------------------------------------------------------------

func TestAuthService_ChangePassword(t *testing.T) {
	user := testUser()
	f := newAuthFixture(t)

	var reencrypted bool
	f.keys.reencryptFn = func(_ context.Context, key models.EncryptionKey, oldPassword, newPassword string) (models.EncryptionKey, error) {
		reencrypted = true
		assert.Equal(t, "old-pass1", oldPassword)
		assert.Equal(t, "new-pass1", newPassword)
		key.EncryptedPrivateKey = "rewrapped"
		return key, nil
	}

	f.users.EXPECT().FindByID(gomock.Any(), user.UserID).Return(user, nil)
	expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 1})
	f.credentials.EXPECT().VerifyPassword("old-pass1", user.PasswordSalt, user.PasswordHash).Return(true, nil)
	f.users.EXPECT().ResetLoginAttempts(gomock.Any(), user.UserID, testNow).Return(nil)
	f.expectHash("new-pass1")
	f.users.EXPECT().ChangePassword(gomock.Any(), user.UserID, models.Credentials{PasswordHash: "new-hash", PasswordSalt: "new-salt"}, gomock.Any(), testNow).
		DoAndReturn(func(_ context.Context, _ int64, _ models.Credentials, key models.EncryptionKey, _ time.Time) error {
			assert.Equal(t, "rewrapped", key.EncryptedPrivateKey)
			assert.Equal(t, testKey().PublicKey, key.PublicKey)
			return nil
		})

	err := f.svc.ChangePassword(context.Background(), user.UserID, models.ChangePasswordRequest{OldPassword: "old-pass1", NewPassword: "new-pass1"})
	require.NoError(t, err)
	assert.True(t, reencrypted)
	assert.Equal(t, []string{models.ActionPasswordChanged}, f.queue.actions())
}

func TestAuthService_ChangePasswordWrongOld(t *testing.T) {
	user := testUser()
	f := newAuthFixture(t)

	until := testNow.Add(30 * time.Minute)

	f.users.EXPECT().FindByID(gomock.Any(), user.UserID).Return(user, nil)
	expectClaim(f.users, user.UserID, models.LoginFailure{LoginAttempts: 3, LockedUntil: &until})
	f.credentials.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.ChangePassword(context.Background(), user.UserID, models.ChangePasswordRequest{OldPassword: "nope", NewPassword: "new-pass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, []string{models.ActionLoginFailed, models.ActionAccountLocked}, f.queue.actions())
}

func TestAuthService_RequestPasswordResetIsSilent(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNotFound)
	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "ghost@example.com"}))
	assert.Empty(t, f.otps.created)

	f.users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(models.User{}, errors.New("db down"))
	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "ada@example.com"}))

	f.users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(testUser(), nil)
	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "ada@example.com"}))
	assert.Equal(t, []models.OTPPurpose{models.OTPPurposePasswordReset}, f.otps.created)
}

func TestAuthService_ConfirmPasswordReset(t *testing.T) {
	user := testUser()

	t.Run("replaces credentials and key", func(t *testing.T) {
		f := newAuthFixture(t)

		var generatedWith string
		f.keys.generateFn = func(_ context.Context, password string) (models.EncryptionKey, error) {
			generatedWith = password
			return testKey(), nil
		}

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.expectHash("new-pass1")
		f.users.EXPECT().ResetPassword(gomock.Any(), user.UserID, gomock.Any(), gomock.Any(), testNow).Return(testKey(), nil)

		err := f.svc.ConfirmPasswordReset(context.Background(), models.PasswordResetConfirmRequest{Email: user.Email, Code: "123456", NewPassword: "new-pass1"})
		require.NoError(t, err)
		assert.Equal(t, "new-pass1", generatedWith)
		assert.Equal(t, []string{models.ActionPasswordReset}, f.queue.actions())
	})

	t.Run("bad code", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		err := f.svc.ConfirmPasswordReset(context.Background(), models.PasswordResetConfirmRequest{Email: user.Email, Code: "000000", NewPassword: "new-pass1"})
		assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
	})

	t.Run("unknown email looks like a bad code", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNotFound)

		err := f.svc.ConfirmPasswordReset(context.Background(), models.PasswordResetConfirmRequest{Email: "ghost@example.com", Code: "123456", NewPassword: "new-pass1"})
		assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
	})
}

// ---------------------------------------------------------------------------
// Validation wrapper
// ---------------------------------------------------------------------------

func TestAuthValidationService(t *testing.T) {
	f := newAuthFixture(t)
	svc := NewAuthValidationService().Wrap(f.svc)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.RegisterRequest{Email: "not-an-email", Password: "correct1horse"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, _, err = svc.Register(ctx, models.RegisterRequest{Email: "ada@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.ChangePassword(ctx, 42, models.ChangePasswordRequest{OldPassword: "same-pass1", NewPassword: "same-pass1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.LoginOTP(ctx, models.LoginOTPRequest{Code: "123456"})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	_, err = svc.LoginOTP(ctx, models.LoginOTPRequest{ChallengeToken: "x"})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)

	err = svc.RequestOTP(ctx, 42, models.OTPRequest{Type: "fax", Purpose: models.OTPPurposeLogin})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.SetTwoFactor(ctx, 42, models.TwoFactorRequest{Enabled: true})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ConfirmPasswordReset(ctx, models.PasswordResetConfirmRequest{Email: "ada@example.com", Code: "", NewPassword: "new-pass1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.Empty(t, f.queue.actions(), "rejected requests must not reach the service")
}
