package models

import "time"

// OTPType is the delivery channel of a one-time password.
type OTPType string

const (
	OTPTypeEmail OTPType = "email"
	OTPTypeSMS   OTPType = "sms"
	OTPTypeApp   OTPType = "app"
)

// Valid reports whether t is a known channel.
func (t OTPType) Valid() bool {
	switch t {
	case OTPTypeEmail, OTPTypeSMS, OTPTypeApp:
		return true
	}
	return false
}

// OTPPurpose scopes a code to one flow; a code issued for one purpose never
// satisfies another.
type OTPPurpose string

const (
	OTPPurposeLogin         OTPPurpose = "login"
	OTPPurposeVerification  OTPPurpose = "verification"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// Valid reports whether p is a known purpose.
func (p OTPPurpose) Valid() bool {
	switch p {
	case OTPPurposeLogin, OTPPurposeVerification, OTPPurposePasswordReset:
		return true
	}
	return false
}

// OTPCode is a single issued challenge. Rows are never deleted; they become
// inert once UsedAt is set or ExpiresAt has passed.
type OTPCode struct {
	ID        int64
	UserID    int64
	Code      string
	Type      OTPType
	Purpose   OTPPurpose
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsValid mirrors the datastore predicate used by the atomic consume update.
func (o OTPCode) IsValid(code string, purpose OTPPurpose, now time.Time) bool {
	return o.UsedAt == nil && now.Before(o.ExpiresAt) && o.Code == code && o.Purpose == purpose
}
