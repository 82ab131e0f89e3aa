package publishers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/samvad-hq/akhbar-tech/internal/logger"
)

// Sink receives events from request handlers.
type Sink interface {
	Emit(evt Event)
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) Emit(Event) {}

const (
	defaultQueueSize      = 256
	defaultPublishTimeout = 5 * time.Second
)

// Dispatcher decouples request handling from downstream delivery. Emit never
// blocks; events that do not fit in the queue are dropped and counted.
type Dispatcher struct {
	fanout  *Fanout
	queue   chan Event
	timeout time.Duration
	log     logger.Logger
	dropped atomic.Int64
}

// NewDispatcher wraps fanout with a queue of queueSize events.
func NewDispatcher(fanout *Fanout, queueSize int, log logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		fanout:  fanout,
		queue:   make(chan Event, queueSize),
		timeout: defaultPublishTimeout,
		log:     logger.Ensure(log),
	}
}

// Emit enqueues evt. With no publishers configured it is a no-op.
func (d *Dispatcher) Emit(evt Event) {
	if d == nil || d.fanout.Size() == 0 {
		return
	}
	select {
	case d.queue <- evt:
	default:
		n := d.dropped.Add(1)
		d.log.WarnObj("activity event dropped", "publisher_queue_full", map[string]any{
			"event_type": evt.Type,
			"dropped":    n,
		})
	}
}

// Dropped returns the number of events discarded because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Run delivers queued events until ctx is cancelled, then drains what is
// left with a short grace period.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-d.queue:
			d.deliver(ctx, evt)
		case <-ctx.Done():
			d.drain()
			return nil
		}
	}
}

func (d *Dispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	for {
		select {
		case evt := <-d.queue:
			d.deliver(ctx, evt)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, evt Event) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	n, err := d.fanout.Publish(ctx, evt)
	if err != nil {
		d.log.ErrorObj("activity event publish failed", "publisher_error", map[string]any{
			"event_type": evt.Type,
			"delivered":  n,
			"error":      err.Error(),
		})
	}
}
