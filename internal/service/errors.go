package service

import "errors"

// Authentication failures. Lockout and a wrong password deliberately share
// one public message; the HTTP layer renders both as "invalid credentials".
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountLocked         = errors.New("account locked")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrInvalidOrExpiredOTP   = errors.New("invalid or expired otp")
)

// Partner protocol failures.
var (
	ErrPartnerAuthRequired       = errors.New("partner authentication required")
	ErrInvalidPartnerOrSignature = errors.New("invalid partner or signature")
	ErrTimestampExpired          = errors.New("request timestamp expired")
)

// Authorization failures.
var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrQuotaExceeded           = errors.New("quota exceeded")
	ErrInvalidEmergencyToken   = errors.New("invalid emergency token")
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrOTPDeliveryFailed   = errors.New("otp delivery failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
