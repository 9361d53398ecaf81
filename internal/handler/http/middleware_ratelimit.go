package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

const (
	defaultEmergencyRatePerMinute = 10
	defaultEmergencyBurst         = 3

	// limiters idle for longer than limiterIdleTTL are dropped once the
	// table grows past limiterSweepSize.
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 10_000
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter holds one token bucket per key.
type keyedLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func newKeyedLimiter(perMinute, burst int) *keyedLimiter {
	if perMinute <= 0 {
		perMinute = defaultEmergencyRatePerMinute
	}
	if burst <= 0 {
		burst = defaultEmergencyBurst
	}
	return &keyedLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether every key still has a token. Tokens are taken only
// when all keys admit the request.
func (k *keyedLimiter) Allow(keys ...string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if len(k.entries) > limiterSweepSize {
		k.sweep(now)
	}

	reservations := make([]*rate.Reservation, 0, len(keys))
	for _, key := range keys {
		e, ok := k.entries[key]
		if !ok {
			e = &limiterEntry{limiter: rate.NewLimiter(k.limit, k.burst)}
			k.entries[key] = e
		}
		e.lastSeen = now

		res := e.limiter.ReserveN(now, 1)
		if !res.OK() || res.DelayFrom(now) > 0 {
			res.CancelAt(now)
			for _, taken := range reservations {
				taken.CancelAt(now)
			}
			return false
		}
		reservations = append(reservations, res)
	}
	return true
}

func (k *keyedLimiter) sweep(now time.Time) {
	for key, e := range k.entries {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(k.entries, key)
		}
	}
}

// emergencyRateLimit throttles the emergency gate per client address and
// per target user. Rejections are audited as denied attempts.
func (h *Handler) emergencyRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := chi.URLParam(r, "userID")
		ip := utils.ClientIP(r)

		if !h.emergencyLimiter.Allow("ip:"+ip, "user:"+userUUID) {
			h.services.EmergencyService.Denied(r.Context(), userUUID, "rate_limited")
			writeError(w, r, ErrRateLimited, "emergency gate rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
