package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
)

// emergencyTokenBytes is the entropy of an emergency token.
const emergencyTokenBytes = 32

type emergencyService struct {
	emergencyRepository store.EmergencyRepository
	userRepository      store.UserRepository

	permissionService PermissionService
	auditService      AuditService

	now    func() time.Time
	logger *logger.Logger
}

func NewEmergencyService(storages *store.Storages, permissionService PermissionService, auditService AuditService, logger *logger.Logger) EmergencyService {
	return &emergencyService{
		emergencyRepository: storages.EmergencyRepository,
		userRepository:      storages.UserRepository,
		permissionService:   permissionService,
		auditService:        auditService,
		now:                 utcNow,
		logger:              logger,
	}
}

// IssueToken creates a new emergency token and retires the previous one.
// Only the SHA-256 of the token is stored.
func (e *emergencyService) IssueToken(ctx context.Context, userID int64) (models.EmergencyTokenResponse, error) {
	user, err := e.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.EmergencyTokenResponse{}, ErrResourceNotFound
		}
		return models.EmergencyTokenResponse{}, fmt.Errorf("error finding user: %w", err)
	}

	token, err := utils.RandomURLToken(emergencyTokenBytes)
	if err != nil {
		return models.EmergencyTokenResponse{}, err
	}

	stored, err := e.emergencyRepository.ReplaceToken(ctx, userID, utils.SHA256Hex(token), e.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*emergencyService.IssueToken").Int64("user_id", userID).Msg("error storing emergency token")
		return models.EmergencyTokenResponse{}, fmt.Errorf("error storing emergency token: %w", err)
	}

	e.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionEmergencyTokenIssued,
		ResourceType: string(models.ResourceEmergencyProfile),
		ResourceID:   strconv.FormatInt(stored.ID, 10),
		Severity:     models.SeverityWarning,
	})

	return models.EmergencyTokenResponse{Token: token, UserUUID: user.UUID}, nil
}

func (e *emergencyService) RevokeToken(ctx context.Context, userID int64) error {
	if err := e.emergencyRepository.RevokeToken(ctx, userID, e.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("error revoking emergency token: %w", err)
	}

	e.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionEmergencyTokenRevoked,
		ResourceType: string(models.ResourceEmergencyProfile),
	})
	return nil
}

// Access opens the read-only emergency profile. Unknown users, missing
// tokens and mismatches all yield ErrInvalidEmergencyToken and a warning
// audit entry.
func (e *emergencyService) Access(ctx context.Context, userUUID, token string) (models.EmergencyProfile, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		e.Denied(ctx, userUUID, "missing_token")
		return models.EmergencyProfile{}, ErrInvalidEmergencyToken
	}
	if !utils.IsValidUUID(userUUID) {
		e.Denied(ctx, userUUID, "malformed_user")
		return models.EmergencyProfile{}, ErrInvalidEmergencyToken
	}

	user, err := e.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			e.Denied(ctx, userUUID, "unknown_user")
			return models.EmergencyProfile{}, ErrInvalidEmergencyToken
		}
		return models.EmergencyProfile{}, fmt.Errorf("error finding user: %w", err)
	}

	active, err := e.emergencyRepository.FindActiveToken(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			e.deny(ctx, user, "no_active_token")
			return models.EmergencyProfile{}, ErrInvalidEmergencyToken
		}
		return models.EmergencyProfile{}, fmt.Errorf("error finding emergency token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(utils.SHA256Hex(token)), []byte(active.TokenHash)) != 1 {
		e.deny(ctx, user, "token_mismatch")
		return models.EmergencyProfile{}, ErrInvalidEmergencyToken
	}

	if err = e.emergencyRepository.TouchToken(ctx, active.ID, e.now()); err != nil {
		log.Warn().Err(err).Str("func", "*emergencyService.Access").Int64("token_id", active.ID).Msg("error touching emergency token")
	}

	profile, err := e.Profile(ctx, user.UserID)
	if err != nil {
		return models.EmergencyProfile{}, err
	}
	profile.UserUUID = user.UUID
	profile.Name = user.Name

	e.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionEmergencyAccess,
		ResourceType: string(models.ResourceEmergencyProfile),
		ResourceID:   user.UUID,
	})

	return profile, nil
}

// Denied records a rejected gate attempt against an unresolved target.
func (e *emergencyService) Denied(ctx context.Context, userUUID, reason string) {
	e.auditService.Record(ctx, models.AuditLogEntry{
		Action:       models.ActionEmergencyDenied,
		ResourceType: string(models.ResourceEmergencyProfile),
		ResourceID:   userUUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"reason": reason},
	})
}

func (e *emergencyService) deny(ctx context.Context, user models.User, reason string) {
	e.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       user.UserID,
		Action:       models.ActionEmergencyDenied,
		ResourceType: string(models.ResourceEmergencyProfile),
		ResourceID:   user.UUID,
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"reason": reason},
	})
}

// SaveProfile replaces the caller's emergency profile. The number of
// referenced documents is capped by the emergency_documents quota.
func (e *emergencyService) SaveProfile(ctx context.Context, claims models.Claims, req models.SaveEmergencyProfileRequest) (models.EmergencyProfile, error) {
	docs := make(models.EmergencyDocumentList, 0, len(req.EmergencyDocuments))
	for _, d := range req.EmergencyDocuments {
		d.ID = strings.TrimSpace(d.ID)
		d.Title = strings.TrimSpace(d.Title)
		if d.ID == "" || d.Title == "" {
			return models.EmergencyProfile{}, fmt.Errorf("%w: emergency document needs id and title", ErrInvalidDataProvided)
		}
		docs = append(docs, d)
	}

	limit := e.permissionService.Limit(claims.Role, models.ResourceEmergencyDocuments)
	if limit != models.Unlimited && len(docs) > limit {
		return models.EmergencyProfile{}, fmt.Errorf("%w: %s %d/%d", ErrQuotaExceeded, models.ResourceEmergencyDocuments, len(docs), limit)
	}

	medical := req.MedicalInfo
	if medical == nil {
		medical = models.JSONMap{}
	}

	profile, err := e.emergencyRepository.SaveProfile(ctx, models.EmergencyProfile{
		UserID:             claims.UserID,
		MedicalInfo:        medical,
		EmergencyDocuments: docs,
		UpdatedAt:          e.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*emergencyService.SaveProfile").Int64("user_id", claims.UserID).Msg("error saving emergency profile")
		return models.EmergencyProfile{}, fmt.Errorf("error saving emergency profile: %w", err)
	}

	e.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       claims.UserID,
		Action:       models.ActionEmergencyProfileSaved,
		ResourceType: string(models.ResourceEmergencyProfile),
		ResourceID:   claims.UUID,
		Details:      models.JSONMap{"documents": len(docs)},
	})

	profile.UserUUID = claims.UUID
	return profile, nil
}

// Profile returns the stored profile, or an empty one if none was saved.
func (e *emergencyService) Profile(ctx context.Context, userID int64) (models.EmergencyProfile, error) {
	profile, err := e.emergencyRepository.FindProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.EmergencyProfile{
			UserID:             userID,
			MedicalInfo:        models.JSONMap{},
			EmergencyDocuments: models.EmergencyDocumentList{},
		}, nil
	}
	if err != nil {
		return models.EmergencyProfile{}, fmt.Errorf("error finding emergency profile: %w", err)
	}
	return profile, nil
}
