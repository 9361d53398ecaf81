package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrPasswordTooWeak = errors.New("password does not meet the policy")
	ErrPasswordReused  = errors.New("new password equals the old one")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrEmptyCode       = errors.New("code is required")
	ErrInvalidScopes   = errors.New("invalid scopes")
)
