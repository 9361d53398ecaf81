package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
)

// tokenService issues HS512 session and challenge tokens.
type tokenService struct {
	// userRepository serves the token epoch check of Authenticate.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	tokenDuration     time.Duration
	challengeDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the App section of the
// configuration.
func NewTokenService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		userRepository:    userRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		challengeDuration: cfg.ChallengeDuration,
		logger:            logger,
	}
}

// Issue returns a session token carrying the user's current token epoch.
func (t *tokenService) Issue(user models.User) (models.Token, error) {
	return t.issue(user, models.TokenPurposeSession, t.tokenDuration)
}

// IssueChallenge returns the short-lived token that binds the OTP step of a
// two-factor login to the password step.
func (t *tokenService) IssueChallenge(user models.User) (models.Token, error) {
	return t.issue(user, models.TokenPurposeOTPChallenge, t.challengeDuration)
}

func (t *tokenService) issue(user models.User, purpose models.TokenPurpose, duration time.Duration) (models.Token, error) {
	claims := models.Claims{
		UserID:  user.UserID,
		UUID:    user.UUID,
		Role:    user.Role,
		Version: user.TokenVersion,
		Purpose: purpose,
	}

	token, err := utils.GenerateJWTToken(t.tokenIssuer, claims, duration, t.tokenSignKey)
	if err != nil {
		t.logger.Err(err).Str("func", "*tokenService.issue").Int64("user_id", user.UserID).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// Verify checks signature, issuer and expiry. Challenge tokens are rejected.
func (t *tokenService) Verify(tokenString string) (models.Claims, error) {
	return t.verify(tokenString, models.TokenPurposeSession)
}

// VerifyChallenge accepts only challenge tokens.
func (t *tokenService) VerifyChallenge(tokenString string) (models.Claims, error) {
	return t.verify(tokenString, models.TokenPurposeOTPChallenge)
}

func (t *tokenService) verify(tokenString string, purpose models.TokenPurpose) (models.Claims, error) {
	if tokenString == "" {
		return models.Claims{}, ErrInvalidOrExpiredToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	if token.Claims.Purpose != purpose {
		return models.Claims{}, fmt.Errorf("%w: unexpected token purpose %q", ErrInvalidOrExpiredToken, token.Claims.Purpose)
	}

	return token.Claims, nil
}

// Authenticate rejects session tokens issued before the last logout-all or
// password reset of their subject.
func (t *tokenService) Authenticate(ctx context.Context, tokenString string) (models.Claims, error) {
	log := logger.FromContext(ctx)

	claims, err := t.Verify(tokenString)
	if err != nil {
		return models.Claims{}, err
	}

	version, err := t.userRepository.GetTokenVersion(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Claims{}, fmt.Errorf("%w: subject no longer exists", ErrInvalidOrExpiredToken)
		}
		log.Err(err).Str("func", "*tokenService.Authenticate").Int64("user_id", claims.UserID).Msg("error reading token version")
		return models.Claims{}, fmt.Errorf("error reading token version: %w", err)
	}

	if claims.Version != version {
		return models.Claims{}, fmt.Errorf("%w: token epoch %d, current %d", ErrInvalidOrExpiredToken, claims.Version, version)
	}

	return claims, nil
}
