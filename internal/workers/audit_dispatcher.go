// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/sethvargo/go-retry"
)

const drainTimeout = 5 * time.Second

// AuditDispatcherConfig sizes the audit queue and its retry policy.
type AuditDispatcherConfig struct {
	QueueSize  int
	Workers    int
	MaxRetries int
	RetryBase  time.Duration
}

// AuditDispatcher decouples audit writes from request handling. Entries are
// buffered in a bounded queue and written by background workers with
// exponential backoff. Entries are dropped, with an error log, when the
// queue is full or the write ultimately fails.
type AuditDispatcher struct {
	sink        AuditSink
	isRetryable func(error) bool
	queue       chan models.AuditLogEntry
	cfg         AuditDispatcherConfig
	logger      *logger.Logger
}

// NewAuditDispatcher builds a dispatcher writing to sink. isRetryable
// decides which write errors are worth another attempt.
func NewAuditDispatcher(sink AuditSink, isRetryable func(error) bool, cfg AuditDispatcherConfig, logger *logger.Logger) *AuditDispatcher {
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 100 * time.Millisecond
	}
	if isRetryable == nil {
		isRetryable = func(error) bool { return false }
	}

	return &AuditDispatcher{
		sink:        sink,
		isRetryable: isRetryable,
		queue:       make(chan models.AuditLogEntry, cfg.QueueSize),
		cfg:         cfg,
		logger:      logger,
	}
}

// Enqueue adds entry to the queue without blocking. It reports whether the
// entry was accepted.
func (d *AuditDispatcher) Enqueue(entry models.AuditLogEntry) bool {
	select {
	case d.queue <- entry:
		return true
	default:
		d.logger.Error().
			Str("func", "*AuditDispatcher.Enqueue").
			Str("action", string(entry.Action)).
			Int64("user_id", entry.UserID).
			Msg("audit queue is full, entry dropped")
		return false
	}
}

// Run consumes the queue until ctx is cancelled, then flushes whatever is
// still buffered within a short grace period.
func (d *AuditDispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for range d.cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.consume(ctx)
		}()
	}
	wg.Wait()

	d.drain()
	return nil
}

func (d *AuditDispatcher) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry := <-d.queue:
			d.write(ctx, entry)
		}
	}
}

func (d *AuditDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case entry := <-d.queue:
			d.write(ctx, entry)
		default:
			return
		}
	}
}

func (d *AuditDispatcher) write(ctx context.Context, entry models.AuditLogEntry) {
	backoff := retry.WithMaxRetries(uint64(d.cfg.MaxRetries), retry.NewExponential(d.cfg.RetryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := d.sink.Create(ctx, &entry); err != nil {
			if d.isRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		d.logger.Err(err).
			Str("func", "*AuditDispatcher.write").
			Str("action", string(entry.Action)).
			Str("severity", string(entry.Severity)).
			Int64("user_id", entry.UserID).
			Msg("audit entry dropped after failed write")
	}
}
