package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

type fakeSink struct {
	mu       sync.Mutex
	calls    atomic.Int32
	entries  []models.AuditLogEntry
	createFn func(call int32) error
}

func (f *fakeSink) Create(_ context.Context, entry *models.AuditLogEntry) error {
	call := f.calls.Add(1)
	if f.createFn != nil {
		if err := f.createFn(call); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeSink) stored() []models.AuditLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AuditLogEntry(nil), f.entries...)
}

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func testDispatcherConfig() AuditDispatcherConfig {
	return AuditDispatcherConfig{QueueSize: 4, Workers: 1, MaxRetries: 3, RetryBase: time.Millisecond}
}

func runDispatcher(t *testing.T, d *AuditDispatcher) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = d.Run(ctx)
		close(done)
	}()
	return func() {
		cancelCtx()
		<-done
	}
}

func TestAuditDispatcher_WritesEnqueuedEntries(t *testing.T) {
	sink := &fakeSink{}
	d := NewAuditDispatcher(sink, isTransient, testDispatcherConfig(), logger.Nop())
	stop := runDispatcher(t, d)
	defer stop()

	require.True(t, d.Enqueue(models.AuditLogEntry{UserID: 1, Action: models.ActionLoginSucceeded}))

	require.Eventually(t, func() bool { return len(sink.stored()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.ActionLoginSucceeded, sink.stored()[0].Action)
}

func TestAuditDispatcher_RetriesTransientErrors(t *testing.T) {
	sink := &fakeSink{createFn: func(call int32) error {
		if call < 3 {
			return errTransient
		}
		return nil
	}}
	d := NewAuditDispatcher(sink, isTransient, testDispatcherConfig(), logger.Nop())
	stop := runDispatcher(t, d)
	defer stop()

	d.Enqueue(models.AuditLogEntry{UserID: 2})

	require.Eventually(t, func() bool { return len(sink.stored()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), sink.calls.Load())
}

func TestAuditDispatcher_DropsAfterMaxRetries(t *testing.T) {
	sink := &fakeSink{createFn: func(int32) error { return errTransient }}
	d := NewAuditDispatcher(sink, isTransient, testDispatcherConfig(), logger.Nop())
	stop := runDispatcher(t, d)

	d.Enqueue(models.AuditLogEntry{UserID: 3})

	require.Eventually(t, func() bool { return sink.calls.Load() == 4 }, time.Second, 5*time.Millisecond)
	stop()
	assert.Empty(t, sink.stored())
	assert.Equal(t, int32(4), sink.calls.Load())
}

func TestAuditDispatcher_DoesNotRetryPermanentErrors(t *testing.T) {
	sink := &fakeSink{createFn: func(int32) error { return errors.New("check violation") }}
	d := NewAuditDispatcher(sink, isTransient, testDispatcherConfig(), logger.Nop())
	stop := runDispatcher(t, d)

	d.Enqueue(models.AuditLogEntry{UserID: 4})

	require.Eventually(t, func() bool { return sink.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	stop()
	assert.Equal(t, int32(1), sink.calls.Load())
}

func TestAuditDispatcher_EnqueueDropsWhenFull(t *testing.T) {
	d := NewAuditDispatcher(&fakeSink{}, isTransient, AuditDispatcherConfig{QueueSize: 2}, logger.Nop())

	assert.True(t, d.Enqueue(models.AuditLogEntry{UserID: 1}))
	assert.True(t, d.Enqueue(models.AuditLogEntry{UserID: 2}))
	assert.False(t, d.Enqueue(models.AuditLogEntry{UserID: 3}))
}

func TestAuditDispatcher_DrainsQueueOnShutdown(t *testing.T) {
	sink := &fakeSink{}
	d := NewAuditDispatcher(sink, isTransient, testDispatcherConfig(), logger.Nop())
	for i := range 3 {
		require.True(t, d.Enqueue(models.AuditLogEntry{UserID: int64(i)}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	assert.Len(t, sink.stored(), 3)
}
