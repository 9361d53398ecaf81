package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
)

// realIP lets chi's RealIP rewrite RemoteAddr from the forwarding headers,
// but only for connections coming from a configured trusted proxy. Any
// other peer is identified by its socket address, so a client cannot pick
// its own rate-limit bucket or audit IP.
func (h *Handler) realIP(next http.Handler) http.Handler {
	forwarded := middleware.RealIP(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.FromTrustedProxy(r, h.trustedProxies) {
			forwarded.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
