// Package utils provides general-purpose helpers shared by the transport
// and service layers: typed context keys, HMAC and digest helpers, JSON
// response writing, the outbound HTTP client, JWT issuing and parsing, and
// UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-identity-vault/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey stores the verified *models.Claims of the caller.
	ClaimsCtxKey = contextKey("claims")
	// PartnerCtxKey stores the authenticated *models.GovernmentPartner.
	PartnerCtxKey = contextKey("partner")
	// RequestMetaCtxKey stores the models.RequestMeta of the request.
	RequestMetaCtxKey = contextKey("requestMeta")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext returns the caller claims placed by the auth
// middleware.
func GetClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.Claims)
	return claims, ok && claims != nil
}

// GetUserIDFromContext returns the internal ID of the authenticated user.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// WithPartner returns a copy of ctx carrying the authenticated partner.
func WithPartner(ctx context.Context, partner *models.GovernmentPartner) context.Context {
	return context.WithValue(ctx, PartnerCtxKey, partner)
}

// GetPartnerFromContext returns the partner placed by the partner
// authentication middleware.
func GetPartnerFromContext(ctx context.Context) (*models.GovernmentPartner, bool) {
	partner, ok := ctx.Value(PartnerCtxKey).(*models.GovernmentPartner)
	return partner, ok && partner != nil
}

// WithRequestMeta returns a copy of ctx carrying client IP and user agent.
func WithRequestMeta(ctx context.Context, meta models.RequestMeta) context.Context {
	return context.WithValue(ctx, RequestMetaCtxKey, meta)
}

// GetRequestMetaFromContext returns request metadata or a zero value.
func GetRequestMetaFromContext(ctx context.Context) models.RequestMeta {
	meta, _ := ctx.Value(RequestMetaCtxKey).(models.RequestMeta)
	return meta
}
