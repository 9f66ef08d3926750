// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultTimeout bounds a single publish when none is configured.
const DefaultTimeout = 5 * time.Second

// Dispatcher publishes events in the background. Dispatch never blocks on
// the broker and never reports failure to the caller; publish errors are
// logged and the event is dropped.
type Dispatcher struct {
	publisher Publisher
	timeout   time.Duration
	logger    *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher returns a Dispatcher sending through publisher. Each publish
// gets its own context bounded by timeout (DefaultTimeout if zero).
func NewDispatcher(publisher Publisher, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{publisher: publisher, timeout: timeout, logger: logger}
}

// Dispatch schedules e for publishing and returns immediately. The publish
// does not inherit any request context, so it outlives the request that
// triggered it. Events dispatched after Close are dropped.
func (d *Dispatcher) Dispatch(e Event) {
	env := NewEnvelope(e)

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		d.logger.Warn("event dropped: dispatcher closed", "event_id", env.ID.String(), "type", env.Type)
		return
	}
	d.wg.Add(1)
	d.mu.RUnlock()

	go d.publish(env)
}

func (d *Dispatcher) publish(env Envelope) {
	defer d.wg.Done()
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("event publisher panicked", "event_id", env.ID.String(), "type", env.Type, "panic", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, env); err != nil {
		d.logger.Error("event publish failed",
			"event_id", env.ID.String(),
			"type", env.Type,
			"error", err,
		)
		return
	}
	d.logger.Debug("event published", "event_id", env.ID.String(), "type", env.Type)
}

// Close stops accepting events and waits for in-flight publishes.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
