package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/internal/workers"
	"github.com/MKhiriev/go-identity-vault/models"
)

// authService is the concrete implementation of AuthService.
// It composes the credential manager, the key, token and OTP services and
// the audit log into the account flows of a portal user.
type authService struct {
	// userRepository is the data-access layer for accounts and credentials.
	userRepository store.UserRepository

	// credentials derives PBKDF2 password hashes.
	credentials crypto.CredentialManager

	// passwords verifies account passwords against the lockout counter.
	passwords *passwordGuard

	keyService   KeyService
	tokenService TokenService
	otpService   OTPService
	auditService AuditService

	// cryptoPool bounds concurrent PBKDF2 derivations.
	cryptoPool *workers.Pool

	uuids *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// authDeps groups the collaborators of authService.
type authDeps struct {
	userRepository store.UserRepository
	credentials    crypto.CredentialManager
	keyService     KeyService
	tokenService   TokenService
	otpService     OTPService
	auditService   AuditService
	cryptoPool     *workers.Pool
}

// newAuthService constructs the AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func newAuthService(deps authDeps, cfg config.App, logger *logger.Logger) *authService {
	return &authService{
		userRepository:   deps.userRepository,
		credentials:      deps.credentials,
		passwords:        newPasswordGuard(deps.userRepository, deps.credentials, deps.cryptoPool, deps.auditService, cfg),
		keyService:       deps.keyService,
		tokenService:     deps.tokenService,
		otpService:       deps.otpService,
		auditService:     deps.auditService,
		cryptoPool:       deps.cryptoPool,
		uuids:            utils.NewUUIDGenerator(),
		now:              utcNow,
		logger:           logger,
	}
}

// Register creates a free-tier account with its first key pair.
//
// Returns the persisted user and a session token, or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	creds, err := a.hashPassword(ctx, req.Password)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	key, err := a.keyService.GenerateKey(ctx, req.Password)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	now := a.now()
	user, key, err := a.userRepository.Create(ctx, models.User{
		UUID:         a.uuids.Generate(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: creds.PasswordHash,
		PasswordSalt: creds.PasswordSalt,
		Role:         models.RoleFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, key)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokenService.Issue(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionUserRegistered,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Details:      models.JSONMap{"key_id": key.ID},
	})

	return user, token, nil
}

// Login authenticates by email and password.
//
// Unknown emails, wrong passwords and locked accounts all fail; the caller
// must not tell them apart in its response. Every attempt on a known
// account is counted before the password is verified and may lock the
// account. With two-factor enabled a login OTP is sent and a challenge
// token returned.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.LoginResult{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.auditService.Record(ctx, models.AuditLogEntry{
				Action:       models.ActionLoginFailed,
				ResourceType: "user",
				Severity:     models.SeverityWarning,
				Details:      models.JSONMap{"reason": "unknown_email"},
			})
			return models.LoginResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.passwords.Check(ctx, user, req.Password, checkLogin); err != nil {
		return models.LoginResult{}, err
	}

	if user.TwoFactorEnabled {
		challenge, err := a.tokenService.IssueChallenge(user)
		if err != nil {
			return models.LoginResult{}, err
		}
		if _, err = a.otpService.CreateOTP(ctx, user, models.OTPTypeEmail, models.OTPPurposeLogin); err != nil {
			return models.LoginResult{}, err
		}
		a.recordOTPIssued(ctx, user.UserID, models.OTPTypeEmail, models.OTPPurposeLogin)

		return models.LoginResult{User: user, OTPRequired: true, ChallengeToken: challenge.String()}, nil
	}

	return a.completeLogin(ctx, user, false)
}

// LoginOTP exchanges a challenge token and a login OTP for a session token.
func (a *authService) LoginOTP(ctx context.Context, req models.LoginOTPRequest) (models.LoginResult, error) {
	claims, err := a.tokenService.VerifyChallenge(req.ChallengeToken)
	if err != nil {
		return models.LoginResult{}, err
	}

	ok, err := a.otpService.VerifyOTP(ctx, claims.UserID, req.Code, models.OTPPurposeLogin)
	if err != nil {
		return models.LoginResult{}, err
	}
	if !ok {
		a.recordOTPRejected(ctx, claims.UserID, models.OTPPurposeLogin)
		return models.LoginResult{}, ErrInvalidOrExpiredOTP
	}

	user, err := a.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.LoginResult{}, ErrInvalidOrExpiredToken
		}
		return models.LoginResult{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if user.TokenVersion != claims.Version {
		return models.LoginResult{}, ErrInvalidOrExpiredToken
	}

	return a.completeLogin(ctx, user, true)
}

func (a *authService) completeLogin(ctx context.Context, user models.User, twoFactor bool) (models.LoginResult, error) {
	token, err := a.tokenService.Issue(user)
	if err != nil {
		return models.LoginResult{}, err
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionLoginSucceeded,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Details:      models.JSONMap{"two_factor": twoFactor},
	})

	return models.LoginResult{User: user, Token: token}, nil
}

// Logout only leaves an audit trail; the client discards its token.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionLogout,
		ResourceType: "session",
	})
	return nil
}

// LogoutAll moves the user's token epoch forward, invalidating every
// session token issued so far.
func (a *authService) LogoutAll(ctx context.Context, userID int64) error {
	version, err := a.userRepository.BumpTokenVersion(ctx, userID, a.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResourceNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.LogoutAll").Int64("user_id", userID).Msg("error bumping token version")
		return fmt.Errorf("error bumping token version: %w", err)
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionLogoutAll,
		ResourceType: "session",
		Details:      models.JSONMap{"token_version": version},
	})
	return nil
}

func (a *authService) RequestOTP(ctx context.Context, userID int64, req models.OTPRequest) error {
	if !req.Type.Valid() || !req.Purpose.Valid() {
		return ErrInvalidDataProvided
	}

	user, err := a.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if _, err = a.otpService.CreateOTP(ctx, user, req.Type, req.Purpose); err != nil {
		return err
	}
	a.recordOTPIssued(ctx, userID, req.Type, req.Purpose)

	return nil
}

func (a *authService) VerifyOTP(ctx context.Context, userID int64, req models.OTPVerifyRequest) error {
	ok, err := a.otpService.VerifyOTP(ctx, userID, req.Code, req.Purpose)
	if err != nil {
		return err
	}
	if !ok {
		a.recordOTPRejected(ctx, userID, req.Purpose)
		return ErrInvalidOrExpiredOTP
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionOTPVerified,
		ResourceType: "otp",
		Details:      models.JSONMap{"purpose": string(req.Purpose)},
	})
	return nil
}

// SetTwoFactor toggles the second factor after re-checking the password.
func (a *authService) SetTwoFactor(ctx context.Context, userID int64, req models.TwoFactorRequest) error {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err = a.passwords.Check(ctx, user, req.Password, checkTwoFactor); err != nil {
		return err
	}

	if err = a.userRepository.SetTwoFactor(ctx, userID, req.Enabled, a.now()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.SetTwoFactor").Int64("user_id", userID).Msg("error updating two-factor flag")
		return fmt.Errorf("error updating two-factor flag: %w", err)
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionTwoFactorChanged,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"enabled": req.Enabled},
	})
	return nil
}

// ChangePassword verifies the old password, stores new credentials and
// re-encrypts the active private key. The key pair itself is kept.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.OldPassword == "" || req.NewPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err = a.passwords.Check(ctx, user, req.OldPassword, checkChangePassword); err != nil {
		return err
	}

	key, err := a.keyService.PublicKey(ctx, userID)
	if err != nil {
		return err
	}

	key, err = a.keyService.Reencrypt(ctx, key, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}

	creds, err := a.hashPassword(ctx, req.NewPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.ChangePassword(ctx, userID, creds, key, a.now()); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", userID).Msg("error storing new password")
		return fmt.Errorf("error storing new password: %w", err)
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionPasswordChanged,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"key_id": key.ID},
	})
	return nil
}

// RequestPasswordReset never reveals whether the email exists: failures
// are logged and swallowed.
func (a *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "*authService.RequestPasswordReset").Msg("user search by email failed")
		}
		return nil
	}

	if _, err = a.otpService.CreateOTP(ctx, user, models.OTPTypeEmail, models.OTPPurposePasswordReset); err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Int64("user_id", user.UserID).Msg("error issuing reset otp")
		return nil
	}
	a.recordOTPIssued(ctx, user.UserID, models.OTPTypeEmail, models.OTPPurposePasswordReset)

	return nil
}

// ConfirmPasswordReset consumes the reset OTP, then replaces the
// credentials and the key pair. The old private key cannot be recovered
// without the forgotten password, so a new pair is generated.
func (a *authService) ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirmRequest) error {
	log := logger.FromContext(ctx)

	if req.NewPassword == "" || req.Code == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOrExpiredOTP
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.otpService.VerifyOTP(ctx, user.UserID, req.Code, models.OTPPurposePasswordReset)
	if err != nil {
		return err
	}
	if !ok {
		a.recordOTPRejected(ctx, user.UserID, models.OTPPurposePasswordReset)
		return ErrInvalidOrExpiredOTP
	}

	creds, err := a.hashPassword(ctx, req.NewPassword)
	if err != nil {
		return err
	}

	key, err := a.keyService.GenerateKey(ctx, req.NewPassword)
	if err != nil {
		return err
	}

	key, err = a.userRepository.ResetPassword(ctx, user.UserID, creds, key, a.now())
	if err != nil {
		log.Err(err).Str("func", "*authService.ConfirmPasswordReset").Int64("user_id", user.UserID).Msg("error resetting password")
		return fmt.Errorf("error resetting password: %w", err)
	}

	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionPasswordReset,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"key_id": key.ID},
	})
	return nil
}

func (a *authService) findUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrResourceNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.findUser").Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (a *authService) hashPassword(ctx context.Context, password string) (models.Credentials, error) {
	var creds models.Credentials
	err := a.cryptoPool.Do(ctx, func() error {
		salt, err := a.credentials.GenerateSalt()
		if err != nil {
			return err
		}
		hash, err := a.credentials.HashPassword(password, salt)
		if err != nil {
			return err
		}
		creds = models.Credentials{PasswordHash: hash, PasswordSalt: salt}
		return nil
	})
	if err != nil {
		return models.Credentials{}, fmt.Errorf("error hashing password: %w", err)
	}
	return creds, nil
}

func (a *authService) recordOTPIssued(ctx context.Context, userID int64, otpType models.OTPType, purpose models.OTPPurpose) {
	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionOTPIssued,
		ResourceType: "otp",
		Details:      models.JSONMap{"type": string(otpType), "purpose": string(purpose)},
	})
}

func (a *authService) recordOTPRejected(ctx context.Context, userID int64, purpose models.OTPPurpose) {
	a.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionOTPRejected,
		ResourceType: "otp",
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"purpose": string(purpose)},
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
