package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/adapter"
	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/models"
)

const defaultOTPLength = 6

type otpService struct {
	otpRepository store.OTPRepository
	notifier      adapter.Notifier

	length int
	ttl    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewOTPService(otpRepository store.OTPRepository, notifier adapter.Notifier, cfg config.App, logger *logger.Logger) OTPService {
	length := cfg.OTPLength
	if length <= 0 {
		length = defaultOTPLength
	}

	return &otpService{
		otpRepository: otpRepository,
		notifier:      notifier,
		length:        length,
		ttl:           cfg.OTPTTL,
		now:           utcNow,
		logger:        logger,
	}
}

func (o *otpService) CreateOTP(ctx context.Context, user models.User, otpType models.OTPType, purpose models.OTPPurpose) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	if !otpType.Valid() || !purpose.Valid() {
		return models.OTPCode{}, ErrInvalidDataProvided
	}

	code, err := generateDigits(o.length)
	if err != nil {
		log.Err(err).Str("func", "*otpService.CreateOTP").Msg("error generating otp")
		return models.OTPCode{}, fmt.Errorf("error generating otp: %w", err)
	}

	now := o.now()
	otp, err := o.otpRepository.Create(ctx, models.OTPCode{
		UserID:    user.UserID,
		Code:      code,
		Type:      otpType,
		Purpose:   purpose,
		ExpiresAt: now.Add(o.ttl),
		CreatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("func", "*otpService.CreateOTP").Int64("user_id", user.UserID).Msg("error storing otp")
		return models.OTPCode{}, fmt.Errorf("error storing otp: %w", err)
	}

	if err = o.notifier.SendOTP(ctx, user, otp); err != nil {
		log.Err(err).
			Str("func", "*otpService.CreateOTP").
			Int64("user_id", user.UserID).
			Str("type", string(otpType)).
			Msg("error delivering otp")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrOTPDeliveryFailed, err)
	}

	return otp, nil
}

func (o *otpService) VerifyOTP(ctx context.Context, userID int64, code string, purpose models.OTPPurpose) (bool, error) {
	if code == "" || !purpose.Valid() {
		return false, nil
	}

	ok, err := o.otpRepository.Consume(ctx, userID, code, purpose, o.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*otpService.VerifyOTP").
			Int64("user_id", userID).
			Msg("error consuming otp")
		return false, fmt.Errorf("error consuming otp: %w", err)
	}

	return ok, nil
}

// generateDigits returns n decimal digits, each taken as a random byte
// modulo 10.
func generateDigits(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = '0' + buf[i]%10
	}
	return string(buf), nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
