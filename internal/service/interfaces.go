// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the identity subsystem:
// account flows, tokens, one-time passwords, key custody, the permission
// matrix, the partner protocol and the emergency gate.
//
// Services depend on store repositories, the crypto primitives and the
// outbound adapters through interfaces only, and report failures with the
// sentinel errors in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-identity-vault/models"
)

// AuthService implements the account flows of a portal user.
type AuthService interface {
	// Register creates the user and its key pair in one transaction and
	// returns a session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)

	// Login verifies the password. With two-factor enabled the result
	// carries a challenge token instead of a session token and a login OTP
	// is sent.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// LoginOTP completes a two-factor login.
	LoginOTP(ctx context.Context, req models.LoginOTPRequest) (models.LoginResult, error)

	Logout(ctx context.Context, userID int64) error
	LogoutAll(ctx context.Context, userID int64) error

	RequestOTP(ctx context.Context, userID int64, req models.OTPRequest) error
	VerifyOTP(ctx context.Context, userID int64, req models.OTPVerifyRequest) error

	SetTwoFactor(ctx context.Context, userID int64, req models.TwoFactorRequest) error

	// ChangePassword re-encrypts the existing private key under the new
	// password.
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error

	// RequestPasswordReset sends a reset OTP when the email is known. It
	// reports success for unknown emails as well.
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error

	// ConfirmPasswordReset replaces the credentials and issues a brand-new
	// key pair; all sessions are invalidated.
	ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirmRequest) error
}

// TokenService issues and verifies JWTs.
type TokenService interface {
	Issue(user models.User) (models.Token, error)
	IssueChallenge(user models.User) (models.Token, error)

	// Verify checks a session token. It is pure: no datastore access.
	Verify(tokenString string) (models.Claims, error)
	VerifyChallenge(tokenString string) (models.Claims, error)

	// Authenticate verifies a session token and checks its epoch against
	// the stored token version of the user.
	Authenticate(ctx context.Context, tokenString string) (models.Claims, error)
}

// OTPService creates and consumes one-time passwords.
type OTPService interface {
	// CreateOTP stores a fresh code for user and delivers it.
	CreateOTP(ctx context.Context, user models.User, otpType models.OTPType, purpose models.OTPPurpose) (models.OTPCode, error)

	// VerifyOTP consumes a matching code atomically.
	VerifyOTP(ctx context.Context, userID int64, code string, purpose models.OTPPurpose) (bool, error)
}

// KeyService manages user key pairs.
type KeyService interface {
	// GenerateKey creates a key pair whose private half is encrypted under
	// password.
	GenerateKey(ctx context.Context, password string) (models.EncryptionKey, error)

	// Reencrypt moves the private key of key from oldPassword to
	// newPassword.
	Reencrypt(ctx context.Context, key models.EncryptionKey, oldPassword, newPassword string) (models.EncryptionKey, error)

	Rotate(ctx context.Context, userID int64, password string) (models.EncryptionKey, error)
	Sign(ctx context.Context, userID int64, req models.SignRequest) (models.SignResponse, error)
	PublicKey(ctx context.Context, userID int64) (models.EncryptionKey, error)
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Record(ctx context.Context, entry models.AuditLogEntry)
}

// PermissionService evaluates the role matrix and quotas.
type PermissionService interface {
	CheckPermission(role models.Role, resource models.Resource, required models.Permission) bool
	Limit(role models.Role, resource models.Resource) int

	// CheckQuota returns ErrQuotaExceeded when the user has no room for one
	// more item. It allows the action when usage cannot be read.
	CheckQuota(ctx context.Context, userID int64, role models.Role, resource models.Resource) error
	Quota(ctx context.Context, userID int64, role models.Role, resource models.Resource) (models.Quota, error)
}

// PartnerService implements the partner protocol, the partner-facing
// queries, partner administration and user grants.
type PartnerService interface {
	// Authenticate verifies a signed partner request.
	Authenticate(ctx context.Context, req models.PartnerAuthRequest) (models.GovernmentPartner, error)

	VerifyIdentity(ctx context.Context, partner models.GovernmentPartner, userUUID string) (models.VerifyIdentityResponse, error)
	CheckAuthorization(ctx context.Context, partner models.GovernmentPartner, req models.CheckAuthorizationRequest) (models.AuthorizationCheck, error)
	PublicKey(ctx context.Context, partner models.GovernmentPartner, userUUID string) (models.PublicKeyResponse, error)

	CreatePartner(ctx context.Context, req models.CreatePartnerRequest) (models.GovernmentPartner, error)
	UpdateStatus(ctx context.Context, partnerID int64, status models.PartnerStatus) (models.GovernmentPartner, error)
	CreateService(ctx context.Context, partnerID int64, req models.CreateServiceRequest) (models.PartnerService, error)

	Authorize(ctx context.Context, claims models.Claims, serviceID int64, req models.AuthorizeServiceRequest) (models.UserServiceAuthorization, error)
	Revoke(ctx context.Context, userID, serviceID int64) error
	ListAuthorizations(ctx context.Context, userID int64) ([]models.UserServiceAuthorization, error)
}

// EmergencyService implements the emergency access gate.
type EmergencyService interface {
	IssueToken(ctx context.Context, userID int64) (models.EmergencyTokenResponse, error)
	RevokeToken(ctx context.Context, userID int64) error

	// Access returns the profile of the user identified by userUUID when
	// token matches the user's active emergency token.
	Access(ctx context.Context, userUUID, token string) (models.EmergencyProfile, error)

	// Denied audits a rejected attempt that never reached Access.
	Denied(ctx context.Context, userUUID, reason string)

	SaveProfile(ctx context.Context, claims models.Claims, req models.SaveEmergencyProfileRequest) (models.EmergencyProfile, error)
	Profile(ctx context.Context, userID int64) (models.EmergencyProfile, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
