package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-identity-vault/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the password of a registration.
	FieldPassword = "password"

	// FieldNewPassword targets the replacement password of a change or reset.
	FieldNewPassword = "new_password"

	// FieldName targets the display name.
	FieldName = "name"

	// FieldPhone targets the optional SMS number.
	FieldPhone = "phone"

	// FieldCode targets a one-time password.
	FieldCode = "code"

	// FieldScopes targets the scope list of a partner service.
	FieldScopes = "scopes"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxNameLength     = 200
	maxScopeLength    = 64
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	scopePattern = regexp.MustCompile(`^[a-z][a-z0-9_.:-]*$`)
)

// AccountValidator implements Validator for the account and partner
// administration requests.
//
// Supported types (value and pointer forms):
//   - models.RegisterRequest
//   - models.ChangePasswordRequest
//   - models.PasswordResetConfirmRequest
//   - models.CreateServiceRequest
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.PasswordResetConfirmRequest:
		return v.validateResetConfirm(value, fields...)
	case *models.PasswordResetConfirmRequest:
		return v.validateResetConfirm(*value, fields...)

	case models.CreateServiceRequest:
		return v.validateCreateService(value, fields...)
	case *models.CreateServiceRequest:
		return v.validateCreateService(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegister checks email, password, name and phone by default.
func (v *AccountValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		case FieldName:
			name := strings.TrimSpace(req.Name)
			if utf8.RuneCountInString(name) > maxNameLength {
				return ErrInvalidName
			}
		case FieldPhone:
			if req.Phone != "" && !phonePattern.MatchString(normalizePhone(req.Phone)) {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldNewPassword:
			if err := validatePassword(req.NewPassword); err != nil {
				return err
			}
			if req.NewPassword == req.OldPassword {
				return ErrPasswordReused
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateResetConfirm(req models.PasswordResetConfirmRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldCode, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldCode:
			if strings.TrimSpace(req.Code) == "" {
				return ErrEmptyCode
			}
		case FieldNewPassword:
			if err := validatePassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateCreateService(req models.CreateServiceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldScopes}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(req.Name)
			if name == "" || utf8.RuneCountInString(name) > maxNameLength {
				return ErrInvalidName
			}
		case FieldScopes:
			for i, s := range req.RequiredScopes {
				if len(s) > maxScopeLength || !scopePattern.MatchString(s) {
					return fmt.Errorf("%w: scope at index %d", ErrInvalidScopes, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// validatePassword requires 8 to 128 characters with at least one letter
// and one digit.
func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLength || n > maxPasswordLength {
		return ErrPasswordTooWeak
	}

	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return ErrPasswordTooWeak
	}
	return nil
}

func normalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}
