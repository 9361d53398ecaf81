package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-identity-vault/internal/validators"
	"github.com/MKhiriev/go-identity-vault/models"
)

// AuthValidationService checks request shape before the wrapped
// AuthService sees it. Flows without free-form input pass straight through.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) LoginOTP(ctx context.Context, req models.LoginOTPRequest) (models.LoginResult, error) {
	if req.ChallengeToken == "" {
		return models.LoginResult{}, ErrInvalidOrExpiredToken
	}
	if req.Code == "" {
		return models.LoginResult{}, ErrInvalidOrExpiredOTP
	}
	return v.inner.LoginOTP(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID int64) error {
	return v.inner.Logout(ctx, userID)
}

func (v *AuthValidationService) LogoutAll(ctx context.Context, userID int64) error {
	return v.inner.LogoutAll(ctx, userID)
}

func (v *AuthValidationService) RequestOTP(ctx context.Context, userID int64, req models.OTPRequest) error {
	if !req.Type.Valid() || !req.Purpose.Valid() {
		return ErrInvalidDataProvided
	}
	return v.inner.RequestOTP(ctx, userID, req)
}

func (v *AuthValidationService) VerifyOTP(ctx context.Context, userID int64, req models.OTPVerifyRequest) error {
	if !req.Purpose.Valid() {
		return ErrInvalidDataProvided
	}
	return v.inner.VerifyOTP(ctx, userID, req)
}

func (v *AuthValidationService) SetTwoFactor(ctx context.Context, userID int64, req models.TwoFactorRequest) error {
	if req.Password == "" {
		return ErrInvalidCredentials
	}
	return v.inner.SetTwoFactor(ctx, userID, req)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	return v.inner.RequestPasswordReset(ctx, req)
}

func (v *AuthValidationService) ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirmRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ConfirmPasswordReset(ctx, req)
}
