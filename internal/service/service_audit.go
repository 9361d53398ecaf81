package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/MKhiriev/go-identity-vault/models"
)

// AuditQueue accepts entries for asynchronous persistence.
// *workers.AuditDispatcher satisfies it.
type AuditQueue interface {
	Enqueue(entry models.AuditLogEntry) bool
}

type auditService struct {
	queue AuditQueue

	now    func() time.Time
	logger *logger.Logger
}

func NewAuditService(queue AuditQueue, logger *logger.Logger) AuditService {
	return &auditService{
		queue:  queue,
		now:    utcNow,
		logger: logger,
	}
}

// Record completes entry with request metadata and a timestamp and hands it
// to the queue. It never blocks and never fails the caller; the queue logs
// what it has to drop.
func (a *auditService) Record(ctx context.Context, entry models.AuditLogEntry) {
	meta := utils.GetRequestMetaFromContext(ctx)
	if entry.IPAddress == "" {
		entry.IPAddress = meta.IPAddress
	}
	if entry.UserAgent == "" {
		entry.UserAgent = meta.UserAgent
	}
	if entry.Severity == "" {
		entry.Severity = models.SeverityInfo
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = a.now()
	}

	a.queue.Enqueue(entry)
}
