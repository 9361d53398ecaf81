package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token is verified with [service.TokenService.Authenticate], which also
// rejects tokens minted before the user's last logout-all or password
// change. On success the claims are stored with [utils.WithClaims] and the
// request logger gains a user_id field.
//
// Requests are rejected with 401 when the header is absent or malformed
// and when the token is invalid, expired or revoked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request without credentials")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token rejected")
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", claims.UserID)
		})
		ctx = utils.WithClaims(l.WithContext(ctx), &claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePermission returns a middleware admitting only callers whose role
// holds at least level on resource. It must run after auth.
func (h *Handler) requirePermission(resource models.Resource, level models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrMissingClaims, "permission check without claims")
				return
			}

			if !h.services.PermissionService.CheckPermission(claims.Role, resource, level) {
				err := fmt.Errorf("%w: %s needs %s on %s", service.ErrInsufficientPermissions, claims.Role, level, resource)
				writeError(w, r, err, "permission denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// claimsFromRequest returns the caller's claims or writes 401.
func claimsFromRequest(w http.ResponseWriter, r *http.Request) (models.Claims, bool) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingClaims, "handler reached without claims")
		return models.Claims{}, false
	}
	return *claims, true
}
