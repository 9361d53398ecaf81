package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthProbe periodically pings the datastore and publishes the result on
// the gRPC health server, for the overall status and for service.
type HealthProbe struct {
	pinger   Pinger
	health   *health.Server
	service  string
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthProbe(pinger Pinger, healthServer *health.Server, service string, interval time.Duration, logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &HealthProbe{
		pinger:   pinger,
		health:   healthServer,
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Run probes immediately and then every interval until ctx is cancelled.
// On exit the status is set to NOT_SERVING.
func (p *HealthProbe) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.set(healthpb.HealthCheckResponse_NOT_SERVING)
			return nil
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	if err := p.pinger.PingContext(pingCtx); err != nil {
		p.logger.Err(err).Str("func", "*HealthProbe.probe").Msg("datastore is unreachable")
		p.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	p.set(healthpb.HealthCheckResponse_SERVING)
}

func (p *HealthProbe) set(status healthpb.HealthCheckResponse_ServingStatus) {
	p.health.SetServingStatus("", status)
	if p.service != "" {
		p.health.SetServingStatus(p.service, status)
	}
}
