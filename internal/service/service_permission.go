// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/models"
)

// permissionMatrix grants levels per role and resource. Resources missing
// from a role's row default to read.
var permissionMatrix = map[models.Role]map[models.Resource]models.Permission{
	models.RoleFree: {
		models.ResourceDocuments:             models.PermissionWrite,
		models.ResourceReminders:             models.PermissionWrite,
		models.ResourceEmergencyProfile:      models.PermissionWrite,
		models.ResourceEmergencyDocuments:    models.PermissionWrite,
		models.ResourceServiceAuthorizations: models.PermissionWrite,
		models.ResourceKeys:                  models.PermissionWrite,
		models.ResourcePartners:              models.PermissionNone,
		models.ResourceAuditLogs:             models.PermissionNone,
	},
	models.RolePremium: {
		models.ResourceDocuments:             models.PermissionWrite,
		models.ResourceReminders:             models.PermissionWrite,
		models.ResourceForms:                 models.PermissionWrite,
		models.ResourceDashboards:            models.PermissionWrite,
		models.ResourceEmergencyProfile:      models.PermissionWrite,
		models.ResourceEmergencyDocuments:    models.PermissionWrite,
		models.ResourceServiceAuthorizations: models.PermissionWrite,
		models.ResourceKeys:                  models.PermissionWrite,
		models.ResourcePartners:              models.PermissionNone,
		models.ResourceAuditLogs:             models.PermissionNone,
	},
	models.RoleAdmin: {
		models.ResourceDocuments:             models.PermissionAdmin,
		models.ResourceReminders:             models.PermissionAdmin,
		models.ResourceCategories:            models.PermissionAdmin,
		models.ResourceForms:                 models.PermissionAdmin,
		models.ResourceDashboards:            models.PermissionAdmin,
		models.ResourceEmergencyProfile:      models.PermissionAdmin,
		models.ResourceEmergencyDocuments:    models.PermissionAdmin,
		models.ResourceServiceAuthorizations: models.PermissionAdmin,
		models.ResourceKeys:                  models.PermissionAdmin,
		models.ResourcePartners:              models.PermissionAdmin,
		models.ResourceAuditLogs:             models.PermissionAdmin,
	},
}

// quotaMatrix holds per-role limits. Resources without an entry are
// unlimited.
var quotaMatrix = map[models.Role]map[models.Resource]int{
	models.RoleFree: {
		models.ResourceDocuments:             50,
		models.ResourceReminders:             10,
		models.ResourceServiceAuthorizations: 3,
		models.ResourceEmergencyDocuments:    3,
	},
	models.RolePremium: {
		models.ResourceDocuments:             1000,
		models.ResourceReminders:             200,
		models.ResourceServiceAuthorizations: 25,
		models.ResourceEmergencyDocuments:    20,
	},
	models.RoleAdmin: {
		models.ResourceDocuments:             models.Unlimited,
		models.ResourceReminders:             models.Unlimited,
		models.ResourceServiceAuthorizations: models.Unlimited,
		models.ResourceEmergencyDocuments:    models.Unlimited,
	},
}

type permissionService struct {
	usageRepository         store.UsageRepository
	authorizationRepository store.AuthorizationRepository
	emergencyRepository     store.EmergencyRepository

	auditService AuditService

	now    func() time.Time
	logger *logger.Logger
}

func NewPermissionService(storages *store.Storages, auditService AuditService, logger *logger.Logger) PermissionService {
	return &permissionService{
		usageRepository:         storages.UsageRepository,
		authorizationRepository: storages.AuthorizationRepository,
		emergencyRepository:     storages.EmergencyRepository,
		auditService:            auditService,
		now:                     utcNow,
		logger:                  logger,
	}
}

// CheckPermission reports whether role holds at least required on resource.
// Unknown roles hold nothing.
func (p *permissionService) CheckPermission(role models.Role, resource models.Resource, required models.Permission) bool {
	row, ok := permissionMatrix[role]
	if !ok {
		return false
	}

	granted, ok := row[resource]
	if !ok {
		granted = models.PermissionRead
	}

	return granted.Satisfies(required)
}

// Limit returns the quota of role for resource, or models.Unlimited.
func (p *permissionService) Limit(role models.Role, resource models.Resource) int {
	limit, ok := quotaMatrix[role][resource]
	if !ok {
		return models.Unlimited
	}
	return limit
}

func (p *permissionService) CheckQuota(ctx context.Context, userID int64, role models.Role, resource models.Resource) error {
	quota, err := p.Quota(ctx, userID, role, resource)
	if err != nil {
		p.failOpen(ctx, userID, resource, err)
		return nil
	}

	if !quota.Allowed {
		return fmt.Errorf("%w: %s %d/%d", ErrQuotaExceeded, resource, quota.Used, quota.Limit)
	}

	return nil
}

func (p *permissionService) Quota(ctx context.Context, userID int64, role models.Role, resource models.Resource) (models.Quota, error) {
	quota := models.Quota{Resource: resource, Limit: p.Limit(role, resource)}

	used, err := p.usage(ctx, userID, resource)
	if err != nil {
		return quota, fmt.Errorf("error reading usage of %s: %w", resource, err)
	}

	quota.Used = used
	quota.Allowed = quota.Limit == models.Unlimited || used < quota.Limit
	return quota, nil
}

// usage counts what the user already holds. Grants and emergency documents
// are owned by this service and counted directly; other resources come
// from the portal's usage counters.
func (p *permissionService) usage(ctx context.Context, userID int64, resource models.Resource) (int, error) {
	switch resource {
	case models.ResourceServiceAuthorizations:
		return p.authorizationRepository.CountActive(ctx, userID, p.now())
	case models.ResourceEmergencyDocuments:
		profile, err := p.emergencyRepository.FindProfile(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return len(profile.EmergencyDocuments), nil
	default:
		return p.usageRepository.Count(ctx, userID, resource)
	}
}

func (p *permissionService) failOpen(ctx context.Context, userID int64, resource models.Resource, err error) {
	logger.FromContext(ctx).Warn().
		Err(err).
		Str("func", "*permissionService.CheckQuota").
		Int64("user_id", userID).
		Str("resource", string(resource)).
		Msg("usage unavailable, allowing action")

	p.auditService.Record(ctx, models.AuditLogEntry{
		UserID:       userID,
		Action:       models.ActionQuotaUnavailable,
		ResourceType: string(resource),
		Severity:     models.SeverityWarning,
		Details:      models.JSONMap{"error": err.Error()},
	})
}
