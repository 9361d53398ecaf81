package models

import "time"

// Severity grades an audit entry.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Audit actions recorded by the identity subsystem.
const (
	ActionUserRegistered        = "user.registered"
	ActionLoginSucceeded        = "user.login_succeeded"
	ActionLoginFailed           = "user.login_failed"
	ActionAccountLocked         = "user.account_locked"
	ActionLogout                = "user.logout"
	ActionLogoutAll             = "user.logout_all"
	ActionPasswordChanged       = "user.password_changed"
	ActionPasswordReset         = "user.password_reset"
	ActionTwoFactorChanged      = "user.two_factor_changed"
	ActionOTPIssued             = "otp.issued"
	ActionOTPVerified           = "otp.verified"
	ActionOTPRejected           = "otp.rejected"
	ActionKeyRotated            = "key.rotated"
	ActionKeyUsed               = "key.used"
	ActionPartnerAuthenticated  = "partner.authenticated"
	ActionPartnerRejected       = "partner.rejected"
	ActionPartnerCreated        = "partner.created"
	ActionPartnerStatusChanged  = "partner.status_changed"
	ActionServiceCreated        = "partner.service_created"
	ActionIdentityVerified      = "partner.identity_verified"
	ActionAuthorizationChecked  = "partner.authorization_checked"
	ActionPublicKeyRead         = "partner.public_key_read"
	ActionServiceAuthorized     = "service.authorized"
	ActionServiceRevoked        = "service.revoked"
	ActionEmergencyTokenIssued  = "emergency.token_issued"
	ActionEmergencyTokenRevoked = "emergency.token_revoked"
	ActionEmergencyProfileSaved = "emergency.profile_saved"
	ActionEmergencyAccess       = "emergency.access"
	ActionEmergencyDenied       = "emergency.denied"
	ActionQuotaUnavailable      = "quota.unavailable"
)

// AuditLogEntry is one append-only record. UserID is 0 for actors that are
// not portal users, such as partners.
type AuditLogEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	Details      JSONMap   `json:"details"`
	Severity     Severity  `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
}

// RequestMeta carries the caller attributes copied into audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
