package models

import "time"

// PartnerStatus is the lifecycle state of a government partner.
type PartnerStatus string

const (
	PartnerStatusPending   PartnerStatus = "pending"
	PartnerStatusActive    PartnerStatus = "active"
	PartnerStatusSuspended PartnerStatus = "suspended"
)

// Valid reports whether s is a known status.
func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusPending, PartnerStatusActive, PartnerStatusSuspended:
		return true
	}
	return false
}

// GovernmentPartner is an external organisation allowed to call the partner
// API with signed requests.
type GovernmentPartner struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`

	// APISecret is only populated in memory: right after creation (so it can
	// be handed out once) and after the sealed value has been opened.
	APISecret string `json:"api_secret,omitempty"`

	// APISecretSealed is the vault-sealed form stored in the datastore.
	APISecretSealed string `json:"-"`

	Status    PartnerStatus `json:"status"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
}

// CanAuthenticate reports whether the partner may sign requests.
func (p GovernmentPartner) CanAuthenticate() bool {
	return p.IsActive && p.Status == PartnerStatusActive
}

// PartnerService is a service offered by a partner that users can authorize.
type PartnerService struct {
	ID             int64      `json:"id"`
	PartnerID      int64      `json:"partner_id"`
	Name           string     `json:"name"`
	RequiredScopes StringList `json:"required_scopes"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// UserServiceAuthorization is a user's grant of scopes to a partner service.
type UserServiceAuthorization struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"-"`
	ServiceID int64      `json:"service_id"`
	Scopes    StringList `json:"scopes"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  bool       `json:"is_active"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsEffective checks revocation, expiry and the active flag independently:
// a revoked or expired grant is inert even if IsActive was never cleared.
func (a UserServiceAuthorization) IsEffective(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.RevokedAt != nil {
		return false
	}
	if a.ExpiresAt != nil && !now.Before(*a.ExpiresAt) {
		return false
	}
	return true
}

// MissingScopes returns the required scopes not granted by a.
func (a UserServiceAuthorization) MissingScopes(required []string) []string {
	granted := make(map[string]struct{}, len(a.Scopes))
	for _, s := range a.Scopes {
		granted[s] = struct{}{}
	}

	missing := make([]string, 0)
	for _, s := range required {
		if _, ok := granted[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// AuthorizationCheck is the answer given to a partner asking whether a user
// has authorized one of its services.
type AuthorizationCheck struct {
	Authorized    bool     `json:"authorized"`
	Scopes        []string `json:"scopes"`
	MissingScopes []string `json:"missing_scopes"`
}
