package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/workers"
	"github.com/MKhiriev/go-identity-vault/models"
)

// Operations reported with a password check in the audit trail.
const (
	checkLogin          = "login"
	checkTwoFactor      = "two_factor"
	checkChangePassword = "change_password"
	checkKeyRotate      = "key_rotate"
	checkSign           = "sign"
)

// passwordGuard runs every account password check through one failure
// counter. An attempt is claimed in the datastore before PBKDF2 runs, so a
// locked account never reaches verification and concurrent guesses cannot
// outrun the threshold.
type passwordGuard struct {
	userRepository store.UserRepository
	credentials    crypto.CredentialManager
	cryptoPool     *workers.Pool
	auditService   AuditService

	threshold int
	duration  time.Duration

	now func() time.Time
}

func newPasswordGuard(
	userRepository store.UserRepository,
	credentials crypto.CredentialManager,
	cryptoPool *workers.Pool,
	auditService AuditService,
	cfg config.App,
) *passwordGuard {
	return &passwordGuard{
		userRepository: userRepository,
		credentials:    credentials,
		cryptoPool:     cryptoPool,
		auditService:   auditService,
		threshold:      cfg.LockoutThreshold,
		duration:       cfg.LockoutDuration,
		now:            utcNow,
	}
}

// Check verifies password against the stored credentials of user.
//
// Returns nil on a match, or:
//   - ErrAccountLocked if the account is locked, without verifying.
//   - ErrInvalidCredentials on a mismatch. The claimed attempt stays
//     counted and may have locked the account.
func (g *passwordGuard) Check(ctx context.Context, user models.User, password, operation string) error {
	log := logger.FromContext(ctx)

	now := g.now()
	if user.IsLocked(now) {
		g.recordLocked(ctx, user, operation)
		return ErrAccountLocked
	}

	claim, err := g.userRepository.ClaimLoginAttempt(ctx, user.UserID, g.threshold, now.Add(g.duration), now)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountLocked):
			g.recordLocked(ctx, user, operation)
			return ErrAccountLocked
		case errors.Is(err, store.ErrNotFound):
			return ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*passwordGuard.Check").Int64("user_id", user.UserID).Msg("error claiming login attempt")
		return fmt.Errorf("error claiming login attempt: %w", err)
	}

	ok, err := g.verify(ctx, user, password)
	if err != nil {
		return err
	}
	if !ok {
		g.recordFailure(ctx, user, operation, claim)
		return ErrInvalidCredentials
	}

	if err = g.userRepository.ResetLoginAttempts(ctx, user.UserID, now); err != nil {
		log.Err(err).Str("func", "*passwordGuard.Check").Int64("user_id", user.UserID).Msg("error resetting login attempts")
		return fmt.Errorf("error resetting login attempts: %w", err)
	}

	return nil
}

// verify treats malformed stored credentials as a mismatch.
func (g *passwordGuard) verify(ctx context.Context, user models.User, password string) (bool, error) {
	var ok bool
	err := g.cryptoPool.Do(ctx, func() error {
		var err error
		ok, err = g.credentials.VerifyPassword(password, user.PasswordSalt, user.PasswordHash)
		return err
	})
	if errors.Is(err, crypto.ErrVerificationFailed) {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", user.UserID).Msg("stored credentials are malformed")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error verifying password: %w", err)
	}
	return ok, nil
}

func (g *passwordGuard) recordLocked(ctx context.Context, user models.User, operation string) {
	g.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionLoginFailed,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"reason": "locked", "operation": operation},
	})
}

func (g *passwordGuard) recordFailure(ctx context.Context, user models.User, operation string, claim models.LoginFailure) {
	g.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionLoginFailed,
		ResourceType: "user",
		ResourceID:   user.UUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"reason": "wrong_password", "operation": operation, "attempts": claim.LoginAttempts},
	})

	if claim.LockedUntil != nil {
		g.auditService.Record(ctx, models.AuditLogEntry{
			UserID:       user.UserID,
			Action:       models.ActionAccountLocked,
			ResourceType: "user",
			ResourceID:   user.UUID,
			Severity:     models.SeverityCritical,
			Details:      models.JSONMap{"locked_until": claim.LockedUntil.Format(time.RFC3339)},
		})
	}
}
