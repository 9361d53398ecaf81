package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity-vault/models"
)

// UserRepository persists accounts together with their credential material
// and key references.
type UserRepository interface {
	// Create inserts the user and its first encryption key in one
	// transaction and links them.
	Create(ctx context.Context, user models.User, key models.EncryptionKey) (models.User, models.EncryptionKey, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
	FindByUUID(ctx context.Context, uuid string) (models.User, error)

	// ClaimLoginAttempt counts an attempt before the password is verified
	// and sets locked_until once the counter reaches threshold, in a single
	// statement. A locked account yields ErrAccountLocked.
	ClaimLoginAttempt(ctx context.Context, userID int64, threshold int, lockUntil, now time.Time) (models.LoginFailure, error)
	ResetLoginAttempts(ctx context.Context, userID int64, now time.Time) error

	// ChangePassword replaces the credentials and the encrypted private key
	// of the active key row. The key pair stays the same.
	ChangePassword(ctx context.Context, userID int64, creds models.Credentials, key models.EncryptionKey, now time.Time) error

	// ResetPassword replaces the credentials, deactivates the current key,
	// activates key and bumps the token epoch.
	ResetPassword(ctx context.Context, userID int64, creds models.Credentials, key models.EncryptionKey, now time.Time) (models.EncryptionKey, error)

	BumpTokenVersion(ctx context.Context, userID int64, now time.Time) (int64, error)
	GetTokenVersion(ctx context.Context, userID int64) (int64, error)
	SetTwoFactor(ctx context.Context, userID int64, enabled bool, now time.Time) error
}

// KeyRepository manages the encryption_keys rows of a user.
type KeyRepository interface {
	FindActiveByUserID(ctx context.Context, userID int64) (models.EncryptionKey, error)

	// Rotate deactivates the active key and stores key as the new active one.
	Rotate(ctx context.Context, userID int64, key models.EncryptionKey, now time.Time) (models.EncryptionKey, error)
}

// OTPRepository stores one-time passwords.
type OTPRepository interface {
	Create(ctx context.Context, otp models.OTPCode) (models.OTPCode, error)

	// Consume marks a matching, unused and unexpired code as used. It
	// reports true only when exactly one row changed.
	Consume(ctx context.Context, userID int64, code string, purpose models.OTPPurpose, now time.Time) (bool, error)
}

// AuditRepository appends audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

// PartnerRepository stores government partners and their services.
type PartnerRepository interface {
	Create(ctx context.Context, partner models.GovernmentPartner) (models.GovernmentPartner, error)
	FindByAPIKey(ctx context.Context, apiKey string) (models.GovernmentPartner, error)
	FindByID(ctx context.Context, partnerID int64) (models.GovernmentPartner, error)
	UpdateStatus(ctx context.Context, partnerID int64, status models.PartnerStatus) (models.GovernmentPartner, error)

	CreateService(ctx context.Context, service models.PartnerService) (models.PartnerService, error)
	FindServiceByID(ctx context.Context, serviceID int64) (models.PartnerService, error)
}

// AuthorizationRepository stores user grants to partner services.
type AuthorizationRepository interface {
	// Create revokes the live grant for the same service, if any, and
	// inserts auth.
	Create(ctx context.Context, auth models.UserServiceAuthorization) (models.UserServiceAuthorization, error)
	Revoke(ctx context.Context, userID, serviceID int64, now time.Time) error

	// FindCurrent returns the newest grant that is active and not revoked.
	// Expiry is left to the caller.
	FindCurrent(ctx context.Context, userID, serviceID int64) (models.UserServiceAuthorization, error)
	ListByUser(ctx context.Context, userID int64) ([]models.UserServiceAuthorization, error)
	CountActive(ctx context.Context, userID int64, now time.Time) (int, error)
	HasActiveForPartner(ctx context.Context, userID, partnerID int64, now time.Time) (bool, error)
}

// EmergencyRepository stores emergency tokens and profiles.
type EmergencyRepository interface {
	// ReplaceToken deactivates the user's active token and stores tokenHash
	// as the new one.
	ReplaceToken(ctx context.Context, userID int64, tokenHash string, now time.Time) (models.EmergencyAccessToken, error)
	RevokeToken(ctx context.Context, userID int64, now time.Time) error
	FindActiveToken(ctx context.Context, userID int64) (models.EmergencyAccessToken, error)
	TouchToken(ctx context.Context, tokenID int64, now time.Time) error

	SaveProfile(ctx context.Context, profile models.EmergencyProfile) (models.EmergencyProfile, error)
	FindProfile(ctx context.Context, userID int64) (models.EmergencyProfile, error)
}

// UsageRepository reads resource counters maintained by the portal.
type UsageRepository interface {
	Count(ctx context.Context, userID int64, resource models.Resource) (int, error)
}
