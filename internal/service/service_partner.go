// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/internal/validators"
	"github.com/MKhiriev/go-identity-vault/models"
)

const (
	apiKeyPrefix  = "pk_"
	apiKeyBytes   = 16
	apiSecretSize = 32
)

type partnerService struct {
	partnerRepository       store.PartnerRepository
	userRepository          store.UserRepository
	keyRepository           store.KeyRepository
	authorizationRepository store.AuthorizationRepository

	vault             crypto.KeyVault
	permissionService PermissionService
	auditService      AuditService
	validator         validators.Validator

	// replayWindow bounds |now - x-timestamp|.
	replayWindow time.Duration

	// authTimeout caps Authenticate; running out of time is a failure.
	authTimeout time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewPartnerService(
	storages *store.Storages,
	vault crypto.KeyVault,
	permissionService PermissionService,
	auditService AuditService,
	cfg config.App,
	logger *logger.Logger,
) PartnerService {
	return &partnerService{
		partnerRepository:       storages.PartnerRepository,
		userRepository:          storages.UserRepository,
		keyRepository:           storages.KeyRepository,
		authorizationRepository: storages.AuthorizationRepository,
		vault:                   vault,
		permissionService:       permissionService,
		auditService:            auditService,
		validator:               validators.NewAccountValidator(),
		replayWindow:            cfg.PartnerReplayWindow,
		authTimeout:             cfg.PartnerAuthTimeout,
		now:                     utcNow,
		logger:                  logger,
	}
}

type partnerAuthResult struct {
	partner models.GovernmentPartner
	err     error
}

// Authenticate verifies a signed partner request:
//
//  1. api key, signature and timestamp must all be present
//  2. the partner must exist, be active and have status "active"
//  3. the signature must equal hex(HMAC-SHA512(secret, method||path||ts||body))
//  4. the timestamp must be integer Unix seconds within the replay window
//
// Every failure is audited. If the checks do not finish within authTimeout
// the request fails.
func (p *partnerService) Authenticate(ctx context.Context, req models.PartnerAuthRequest) (models.GovernmentPartner, error) {
	if req.APIKey == "" || req.Signature == "" || req.Timestamp == "" {
		p.recordRejected(ctx, req.APIKey, "missing_headers")
		return models.GovernmentPartner{}, ErrPartnerAuthRequired
	}

	if p.authTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.authTimeout)
		defer cancel()
	}

	done := make(chan partnerAuthResult, 1)
	go func() {
		partner, err := p.verify(ctx, req)
		done <- partnerAuthResult{partner: partner, err: err}
	}()

	var res partnerAuthResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = fmt.Errorf("%w: %w", ErrInvalidPartnerOrSignature, ctx.Err())
	}

	if res.err != nil {
		p.recordRejected(ctx, req.APIKey, reasonOf(res.err))
		return models.GovernmentPartner{}, res.err
	}

	p.auditService.Record(ctx, models.AuditLogEntry{
		Action:       models.ActionPartnerAuthenticated,
		ResourceType: "partner",
		ResourceID:   strconv.FormatInt(res.partner.ID, 10),
		Details:      models.JSONMap{"method": req.Method, "path": req.Path},
	})

	return res.partner, nil
}

func (p *partnerService) verify(ctx context.Context, req models.PartnerAuthRequest) (models.GovernmentPartner, error) {
	log := logger.FromContext(ctx)

	partner, err := p.partnerRepository.FindByAPIKey(ctx, req.APIKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "*partnerService.verify").Msg("partner lookup failed")
		}
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrInvalidPartnerOrSignature, err)
	}
	if !partner.CanAuthenticate() {
		return models.GovernmentPartner{}, fmt.Errorf("%w: partner %d is %s", ErrInvalidPartnerOrSignature, partner.ID, partner.Status)
	}

	secret, err := p.vault.OpenSecret(partner.APISecretSealed)
	if err != nil {
		log.Err(err).Str("func", "*partnerService.verify").Int64("partner_id", partner.ID).Msg("error opening partner secret")
		return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrInvalidPartnerOrSignature, err)
	}

	expected := utils.SignHMAC(utils.PartnerMessage(req.Method, req.Path, req.Timestamp, req.Body), []byte(secret))
	if !utils.EqualHMAC(expected, strings.ToLower(req.Signature)) {
		return models.GovernmentPartner{}, fmt.Errorf("%w: signature mismatch", ErrInvalidPartnerOrSignature)
	}

	ts, err := strconv.ParseInt(req.Timestamp, 10, 64)
	if err != nil {
		return models.GovernmentPartner{}, fmt.Errorf("%w: malformed timestamp", ErrInvalidPartnerOrSignature)
	}

	// bounds in unix seconds: ts itself never takes part in arithmetic
	now, window := p.now().Unix(), int64(p.replayWindow/time.Second)
	if ts < now-window || ts > now+window {
		return models.GovernmentPartner{}, fmt.Errorf("%w: timestamp %d outside window", ErrTimestampExpired, ts)
	}

	partner.APISecret = ""
	partner.APISecretSealed = ""
	return partner, nil
}

func (p *partnerService) VerifyIdentity(ctx context.Context, partner models.GovernmentPartner, userUUID string) (models.VerifyIdentityResponse, error) {
	user, err := p.findUserByUUID(ctx, userUUID)
	if err != nil {
		return models.VerifyIdentityResponse{}, err
	}

	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionIdentityVerified,
		ResourceType: "partner",
		ResourceID:   strconv.FormatInt(partner.ID, 10),
	})

	return models.VerifyIdentityResponse{Verified: true, UserUUID: user.UUID}, nil
}

// CheckAuthorization answers whether the user has a live grant covering
// every scope the partner's service requires.
func (p *partnerService) CheckAuthorization(ctx context.Context, partner models.GovernmentPartner, req models.CheckAuthorizationRequest) (models.AuthorizationCheck, error) {
	svc, err := p.partnerRepository.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthorizationCheck{}, ErrResourceNotFound
		}
		return models.AuthorizationCheck{}, fmt.Errorf("error finding service: %w", err)
	}
	if svc.PartnerID != partner.ID {
		return models.AuthorizationCheck{}, fmt.Errorf("%w: service %d belongs to another partner", ErrResourceNotFound, svc.ID)
	}
	if !svc.IsActive {
		return models.AuthorizationCheck{}, fmt.Errorf("%w: service %d is inactive", ErrResourceNotFound, svc.ID)
	}

	user, err := p.findUserByUUID(ctx, req.UserUUID)
	if err != nil {
		return models.AuthorizationCheck{}, err
	}

	check := models.AuthorizationCheck{Scopes: []string{}, MissingScopes: append([]string{}, svc.RequiredScopes...)}

	auth, err := p.authorizationRepository.FindCurrent(ctx, user.UserID, svc.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return models.AuthorizationCheck{}, fmt.Errorf("error finding authorization: %w", err)
	case auth.IsEffective(p.now()):
		check.Scopes = append(check.Scopes, auth.Scopes...)
		check.MissingScopes = auth.MissingScopes(svc.RequiredScopes)
		check.Authorized = len(check.MissingScopes) == 0
	}

	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionAuthorizationChecked,
		ResourceType: "partner_service",
		ResourceID:   strconv.FormatInt(svc.ID, 10),
		Details:      models.JSONMap{"partner_id": partner.ID, "authorized": check.Authorized},
	})

	return check, nil
}

// PublicKey serves the user's active public key to a partner holding a live
// grant on any of its services.
func (p *partnerService) PublicKey(ctx context.Context, partner models.GovernmentPartner, userUUID string) (models.PublicKeyResponse, error) {
	user, err := p.findUserByUUID(ctx, userUUID)
	if err != nil {
		return models.PublicKeyResponse{}, err
	}

	ok, err := p.authorizationRepository.HasActiveForPartner(ctx, user.UserID, partner.ID, p.now())
	if err != nil {
		return models.PublicKeyResponse{}, fmt.Errorf("error checking authorization: %w", err)
	}
	if !ok {
		return models.PublicKeyResponse{}, ErrInsufficientPermissions
	}

	key, err := p.keyRepository.FindActiveByUserID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveKey) {
			return models.PublicKeyResponse{}, ErrResourceNotFound
		}
		return models.PublicKeyResponse{}, fmt.Errorf("error finding active key: %w", err)
	}

	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionPublicKeyRead,
		ResourceType: string(models.ResourceKeys),
		ResourceID:   strconv.FormatInt(key.ID, 10),
		Details:      models.JSONMap{"partner_id": partner.ID},
	})

	return models.PublicKeyResponse{
		UserUUID:  user.UUID,
		KeyID:     key.ID,
		PublicKey: key.PublicKey,
		Algorithm: key.Algorithm,
	}, nil
}

// CreatePartner registers a pending partner. The returned value carries
// the clear API secret; it is not retrievable afterwards.
func (p *partnerService) CreatePartner(ctx context.Context, req models.CreatePartnerRequest) (models.GovernmentPartner, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.GovernmentPartner{}, ErrInvalidDataProvided
	}

	keyPart, err := utils.RandomHex(apiKeyBytes)
	if err != nil {
		return models.GovernmentPartner{}, err
	}
	secret, err := utils.RandomHex(apiSecretSize)
	if err != nil {
		return models.GovernmentPartner{}, err
	}
	sealed, err := p.vault.SealSecret(secret)
	if err != nil {
		log.Err(err).Str("func", "*partnerService.CreatePartner").Msg("error sealing partner secret")
		return models.GovernmentPartner{}, fmt.Errorf("error sealing partner secret: %w", err)
	}

	partner, err := p.partnerRepository.Create(ctx, models.GovernmentPartner{
		Name:            name,
		APIKey:          apiKeyPrefix + keyPart,
		APISecretSealed: sealed,
		Status:          models.PartnerStatusPending,
		IsActive:        true,
		CreatedAt:       p.now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrPartnerAlreadyExists) {
			return models.GovernmentPartner{}, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
		log.Err(err).Str("func", "*partnerService.CreatePartner").Msg("error creating partner")
		return models.GovernmentPartner{}, fmt.Errorf("error creating partner: %w", err)
	}

	p.recordAdmin(ctx, models.ActionPartnerCreated, partner.ID, models.JSONMap{"name": partner.Name})

	partner.APISecret = secret
	partner.APISecretSealed = ""
	return partner, nil
}

func (p *partnerService) UpdateStatus(ctx context.Context, partnerID int64, status models.PartnerStatus) (models.GovernmentPartner, error) {
	if !status.Valid() {
		return models.GovernmentPartner{}, ErrInvalidDataProvided
	}

	partner, err := p.partnerRepository.UpdateStatus(ctx, partnerID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.GovernmentPartner{}, ErrResourceNotFound
		}
		return models.GovernmentPartner{}, fmt.Errorf("error updating partner status: %w", err)
	}

	p.recordAdmin(ctx, models.ActionPartnerStatusChanged, partner.ID, models.JSONMap{"status": string(status)})

	partner.APISecretSealed = ""
	return partner, nil
}

func (p *partnerService) CreateService(ctx context.Context, partnerID int64, req models.CreateServiceRequest) (models.PartnerService, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.PartnerService{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	name := strings.TrimSpace(req.Name)

	if _, err := p.partnerRepository.FindByID(ctx, partnerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PartnerService{}, ErrResourceNotFound
		}
		return models.PartnerService{}, fmt.Errorf("error finding partner: %w", err)
	}

	svc, err := p.partnerRepository.CreateService(ctx, models.PartnerService{
		PartnerID:      partnerID,
		Name:           name,
		RequiredScopes: normalizeScopes(req.RequiredScopes),
		IsActive:       true,
		CreatedAt:      p.now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrServiceAlreadyExists) {
			return models.PartnerService{}, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
		return models.PartnerService{}, fmt.Errorf("error creating partner service: %w", err)
	}

	p.recordAdmin(ctx, models.ActionServiceCreated, partnerID, models.JSONMap{"service_id": svc.ID})

	return svc, nil
}

// Authorize grants scopes of a service to the caller, replacing any live
// grant for the same service. A new grant counts against the
// service_authorizations quota; replacing one does not.
func (p *partnerService) Authorize(ctx context.Context, claims models.Claims, serviceID int64, req models.AuthorizeServiceRequest) (models.UserServiceAuthorization, error) {
	log := logger.FromContext(ctx)

	if req.ExpiresInDays < 0 || req.ExpiresInDays > models.MaxAuthorizationDays {
		return models.UserServiceAuthorization{}, fmt.Errorf("%w: expires_in_days must be within 0..%d", ErrInvalidDataProvided, models.MaxAuthorizationDays)
	}

	svc, err := p.findAuthorizableService(ctx, serviceID)
	if err != nil {
		return models.UserServiceAuthorization{}, err
	}

	scopes := normalizeScopes(req.Scopes)
	if len(scopes) == 0 {
		scopes = append(scopes, svc.RequiredScopes...)
	}
	for _, s := range scopes {
		if !slices.Contains(svc.RequiredScopes, s) {
			return models.UserServiceAuthorization{}, fmt.Errorf("%w: unknown scope %q", ErrInvalidDataProvided, s)
		}
	}

	now := p.now()
	current, err := p.authorizationRepository.FindCurrent(ctx, claims.UserID, svc.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.UserServiceAuthorization{}, fmt.Errorf("error finding authorization: %w", err)
	}
	replacing := err == nil && current.IsEffective(now)
	if !replacing {
		if err = p.permissionService.CheckQuota(ctx, claims.UserID, claims.Role, models.ResourceServiceAuthorizations); err != nil {
			return models.UserServiceAuthorization{}, err
		}
	}

	grant := models.UserServiceAuthorization{
		UserID:    claims.UserID,
		ServiceID: svc.ID,
		Scopes:    scopes,
		IsActive:  true,
		CreatedAt: now,
	}
	if req.ExpiresInDays > 0 {
		expires := now.Add(time.Duration(req.ExpiresInDays) * 24 * time.Hour)
		grant.ExpiresAt = &expires
	}

	grant, err = p.authorizationRepository.Create(ctx, grant)
	if err != nil {
		log.Err(err).Str("func", "*partnerService.Authorize").Int64("user_id", claims.UserID).Msg("error storing authorization")
		return models.UserServiceAuthorization{}, fmt.Errorf("error storing authorization: %w", err)
	}

	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       claims.UserID,
		Action:       models.ActionServiceAuthorized,
		ResourceType: "partner_service",
		ResourceID:   strconv.FormatInt(svc.ID, 10),
		Details:      models.JSONMap{"scopes": []string(grant.Scopes)},
	})

	return grant, nil
}

func (p *partnerService) Revoke(ctx context.Context, userID, serviceID int64) error {
	if err := p.authorizationRepository.Revoke(ctx, userID, serviceID, p.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("error revoking authorization: %w", err)
	}

	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionServiceRevoked,
		ResourceType: "partner_service",
		ResourceID:   strconv.FormatInt(serviceID, 10),
	})
	return nil
}

func (p *partnerService) ListAuthorizations(ctx context.Context, userID int64) ([]models.UserServiceAuthorization, error) {
	list, err := p.authorizationRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing authorizations: %w", err)
	}
	return list, nil
}

func (p *partnerService) findAuthorizableService(ctx context.Context, serviceID int64) (models.PartnerService, error) {
	svc, err := p.partnerRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PartnerService{}, ErrResourceNotFound
		}
		return models.PartnerService{}, fmt.Errorf("error finding service: %w", err)
	}
	if !svc.IsActive {
		return models.PartnerService{}, ErrResourceNotFound
	}

	partner, err := p.partnerRepository.FindByID(ctx, svc.PartnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PartnerService{}, ErrResourceNotFound
		}
		return models.PartnerService{}, fmt.Errorf("error finding partner: %w", err)
	}
	if !partner.CanAuthenticate() {
		return models.PartnerService{}, ErrResourceNotFound
	}

	return svc, nil
}

func (p *partnerService) findUserByUUID(ctx context.Context, userUUID string) (models.User, error) {
	if !utils.IsValidUUID(userUUID) {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := p.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrResourceNotFound
		}
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

func (p *partnerService) recordRejected(ctx context.Context, apiKey, reason string) {
	p.auditService.Record(ctx, models.AuditLogEntry{
		Action:       models.ActionPartnerRejected,
		ResourceType: "partner",
		ResourceID:   apiKey,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"reason": reason},
	})
}

func (p *partnerService) recordAdmin(ctx context.Context, action string, partnerID int64, details models.JSONMap) {
	adminID, _ := utils.GetUserIDFromContext(ctx)
	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       adminID,
		Action:       action,
		ResourceType: "partner",
		ResourceID:   strconv.FormatInt(partnerID, 10),
		Details:      details,
	})
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrTimestampExpired):
		return "timestamp_expired"
	default:
		return "invalid_partner_or_signature"
	}
}

// normalizeScopes trims, drops empties and removes duplicates, keeping the
// first occurrence order.
func normalizeScopes(scopes []string) models.StringList {
	out := make(models.StringList, 0, len(scopes))
	for _, s := range scopes {
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
