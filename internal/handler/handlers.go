package handler

import (
	"fmt"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-identity-vault/internal/handler/http"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"google.golang.org/grpc/health"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured transport. healthServer is
// the status board the gRPC handler serves; it may be nil when no gRPC
// address is configured.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, healthServer *health.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		proxies, err := utils.ParseTrustedProxies(cfg.Server.TrustedProxies)
		if err != nil {
			return nil, fmt.Errorf("error parsing trusted proxies: %w", err)
		}
		handlers.HTTP = http.NewHandler(services, cfg.App, proxies, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(healthServer, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
