// Package grpc implements the gRPC transport of the identity service: the
// standard health service, reflecting datastore reachability, and the
// server interceptors.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It owns the health status board that workers.HealthProbe updates and
// registers it on the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] serving healthServer. A nil
// healthServer gets a fresh one.
func NewHandler(healthServer *health.Server, logger *logger.Logger) *Handler {
	if healthServer == nil {
		healthServer = health.NewServer()
	}
	// not serving until the first datastore probe succeeds
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches the services of h to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// Shutdown marks every service NOT_SERVING so that clients stop routing
// traffic before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging attaches a request-scoped logger with a trace_id to the
// context and writes one access log line per call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", uuid.NewString())
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
