// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---------------------------------------------------------------------------
// CheckPermission
// ---------------------------------------------------------------------------

func TestPermissionService_CheckPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages, _ := newTestStorages(ctrl)
	audit, _ := newTestAudit()
	p := newTestPermissions(storages, audit)

	tests := []struct {
		name     string
		role     models.Role
		resource models.Resource
		required models.Permission
		want     bool
	}{
		{name: "free writes documents", role: models.RoleFree, resource: models.ResourceDocuments, required: models.PermissionWrite, want: true},
		{name: "free cannot admin documents", role: models.RoleFree, resource: models.ResourceDocuments, required: models.PermissionAdmin},
		{name: "free reads forms by default", role: models.RoleFree, resource: models.ResourceForms, required: models.PermissionRead, want: true},
		{name: "free cannot write forms", role: models.RoleFree, resource: models.ResourceForms, required: models.PermissionWrite},
		{name: "free has no partners access", role: models.RoleFree, resource: models.ResourcePartners, required: models.PermissionRead},
		{name: "premium writes forms", role: models.RolePremium, resource: models.ResourceForms, required: models.PermissionWrite, want: true},
		{name: "premium cannot read audit logs", role: models.RolePremium, resource: models.ResourceAuditLogs, required: models.PermissionRead},
		{name: "admin manages partners", role: models.RoleAdmin, resource: models.ResourcePartners, required: models.PermissionAdmin, want: true},
		{name: "unknown role holds nothing", role: "guest", resource: models.ResourceDocuments, required: models.PermissionRead},
		{name: "none is always satisfied for known roles", role: models.RoleFree, resource: models.ResourcePartners, required: models.PermissionNone, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CheckPermission(tt.role, tt.resource, tt.required))
		})
	}
}

func TestPermissionService_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages, _ := newTestStorages(ctrl)
	audit, _ := newTestAudit()
	p := newTestPermissions(storages, audit)

	assert.Equal(t, 3, p.Limit(models.RoleFree, models.ResourceServiceAuthorizations))
	assert.Equal(t, 25, p.Limit(models.RolePremium, models.ResourceServiceAuthorizations))
	assert.Equal(t, models.Unlimited, p.Limit(models.RoleAdmin, models.ResourceDocuments))
	assert.Equal(t, models.Unlimited, p.Limit(models.RoleFree, models.ResourceCategories))
	assert.Equal(t, models.Unlimited, p.Limit("guest", models.ResourceDocuments))
}

// ---------------------------------------------------------------------------
// Quota and CheckQuota
// ---------------------------------------------------------------------------

func TestPermissionService_QuotaSources(t *testing.T) {
	t.Run("authorizations are counted from grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storages, m := newTestStorages(ctrl)
		audit, _ := newTestAudit()
		p := newTestPermissions(storages, audit)

		m.authorizations.EXPECT().CountActive(gomock.Any(), int64(42), testNow).Return(2, nil)

		q, err := p.Quota(context.Background(), 42, models.RoleFree, models.ResourceServiceAuthorizations)
		require.NoError(t, err)
		assert.Equal(t, models.Quota{Resource: models.ResourceServiceAuthorizations, Limit: 3, Used: 2, Allowed: true}, q)
	})

	t.Run("emergency documents are counted from the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storages, m := newTestStorages(ctrl)
		audit, _ := newTestAudit()
		p := newTestPermissions(storages, audit)

		m.emergency.EXPECT().FindProfile(gomock.Any(), int64(42)).Return(models.EmergencyProfile{
			EmergencyDocuments: models.EmergencyDocumentList{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}},
		}, nil)

		q, err := p.Quota(context.Background(), 42, models.RoleFree, models.ResourceEmergencyDocuments)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Used)
		assert.False(t, q.Allowed)
	})

	t.Run("missing profile counts as zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storages, m := newTestStorages(ctrl)
		audit, _ := newTestAudit()
		p := newTestPermissions(storages, audit)

		m.emergency.EXPECT().FindProfile(gomock.Any(), int64(42)).Return(models.EmergencyProfile{}, store.ErrNotFound)

		q, err := p.Quota(context.Background(), 42, models.RoleFree, models.ResourceEmergencyDocuments)
		require.NoError(t, err)
		assert.Equal(t, 0, q.Used)
		assert.True(t, q.Allowed)
	})

	t.Run("portal resources use usage counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storages, m := newTestStorages(ctrl)
		audit, _ := newTestAudit()
		p := newTestPermissions(storages, audit)

		m.usage.EXPECT().Count(gomock.Any(), int64(42), models.ResourceDocuments).Return(5000, nil)

		q, err := p.Quota(context.Background(), 42, models.RoleAdmin, models.ResourceDocuments)
		require.NoError(t, err)
		assert.Equal(t, models.Unlimited, q.Limit)
		assert.True(t, q.Allowed)
	})
}

func TestPermissionService_CheckQuota(t *testing.T) {
	tests := []struct {
		name      string
		used      int
		usageErr  error
		wantErr   error
		wantAudit string
	}{
		{name: "below limit", used: 9},
		{name: "at limit", used: 10, wantErr: ErrQuotaExceeded},
		{name: "above limit", used: 11, wantErr: ErrQuotaExceeded},
		{name: "usage unavailable fails open", usageErr: errors.New("portal offline"), wantAudit: models.ActionQuotaUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storages, m := newTestStorages(ctrl)
			audit, queue := newTestAudit()
			p := newTestPermissions(storages, audit)

			m.usage.EXPECT().Count(gomock.Any(), int64(42), models.ResourceReminders).Return(tt.used, tt.usageErr)

			err := p.CheckQuota(context.Background(), 42, models.RoleFree, models.ResourceReminders)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			if tt.wantAudit != "" {
				require.Equal(t, []string{tt.wantAudit}, queue.actions())
				assert.Equal(t, models.SeverityWarning, queue.last().Severity)
			} else {
				assert.Empty(t, queue.actions())
			}
		})
	}
}
