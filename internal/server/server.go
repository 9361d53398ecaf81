package server

import (
	"context"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/handler"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

// Run starts every created server. The first server to fail stops the
// others.
func (s *server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(func() error {
			return s.httpServer.Run(ctx)
		})
	}
	if s.gRPCServer != nil {
		g.Go(func() error {
			return s.gRPCServer.Run(ctx)
		})
	}

	err := g.Wait()
	if err == nil {
		s.logger.Info().Msg("server shutdown gracefully")
	}
	return err
}
