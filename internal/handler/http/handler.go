package http

import (
	"net/netip"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/service"
)

type Handler struct {
	services *service.Services

	emergencyLimiter *keyedLimiter

	// trustedProxies may set the client address through forwarding headers.
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, trustedProxies []netip.Prefix, logger *logger.Logger) *Handler {
	logger.Info().Int("trusted_proxies", len(trustedProxies)).Msg("http handler created")
	return &Handler{
		services:         services,
		emergencyLimiter: newKeyedLimiter(cfg.EmergencyRatePerMinute, cfg.EmergencyBurst),
		trustedProxies:   trustedProxies,
		logger:           logger,
	}
}
