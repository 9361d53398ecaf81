package models

import "strings"

// Role is the canonical three-tier role of a portal user.
type Role string

const (
	RoleFree    Role = "free"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

// ParseRole normalises a stored role value. The legacy "user" tier maps to
// RoleFree; anything unknown is rejected.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleFree), "user":
		return RoleFree, true
	case string(RolePremium):
		return RolePremium, true
	case string(RoleAdmin):
		return RoleAdmin, true
	}
	return "", false
}

// Resource names a protected resource class of the portal.
type Resource string

const (
	ResourceDocuments             Resource = "documents"
	ResourceReminders             Resource = "reminders"
	ResourceCategories            Resource = "categories"
	ResourceForms                 Resource = "forms"
	ResourceDashboards            Resource = "dashboards"
	ResourceEmergencyProfile      Resource = "emergency_profile"
	ResourceEmergencyDocuments    Resource = "emergency_documents"
	ResourceServiceAuthorizations Resource = "service_authorizations"
	ResourceKeys                  Resource = "keys"
	ResourcePartners              Resource = "partners"
	ResourceAuditLogs             Resource = "audit_logs"
)

// Valid reports whether r is a known resource class.
func (r Resource) Valid() bool {
	switch r {
	case ResourceDocuments, ResourceReminders, ResourceCategories, ResourceForms,
		ResourceDashboards, ResourceEmergencyProfile, ResourceEmergencyDocuments,
		ResourceServiceAuthorizations, ResourceKeys, ResourcePartners, ResourceAuditLogs:
		return true
	}
	return false
}

// Permission is a totally ordered access level: none < read < write < admin.
type Permission int

const (
	PermissionNone Permission = iota
	PermissionRead
	PermissionWrite
	PermissionAdmin
)

// String returns the lowercase name of the permission level.
func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	case PermissionAdmin:
		return "admin"
	default:
		return "none"
	}
}

// Satisfies reports whether p dominates required.
func (p Permission) Satisfies(required Permission) bool {
	return p >= required
}

// Unlimited is the quota sentinel meaning "no limit".
const Unlimited = -1

// Quota describes the outcome of a quota lookup.
type Quota struct {
	Resource Resource `json:"resource"`
	Limit    int      `json:"limit"`
	Used     int      `json:"used"`
	Allowed  bool     `json:"allowed"`
}
