// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package events

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the log instead of a broker. It is used
// when no Valkey server is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a LogPublisher. A nil logger uses slog.Default().
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish implements Publisher. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, env Envelope) error {
	p.logger.InfoContext(ctx, "event",
		"event_id", env.ID.String(),
		"type", env.Type,
		"occurred_at", env.OccurredAt,
		"payload", env.Payload,
	)
	return nil
}
