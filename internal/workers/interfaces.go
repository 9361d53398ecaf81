// Package workers provides the background machinery of the service: the
// audit dispatcher, the datastore health probe, and bounded pools for
// CPU-heavy crypto work.
package workers

import (
	"context"

	"github.com/MKhiriev/go-identity-vault/models"
)

// Worker is a long-running background task. Run blocks until ctx is
// cancelled or the worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// AuditSink persists audit entries. store.AuditRepository satisfies it.
type AuditSink interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

// Pinger reports datastore reachability. *store.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}
