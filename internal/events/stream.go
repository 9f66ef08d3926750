// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultStreamMaxLen caps the stream length (approximately) so an idle
// consumer cannot grow it without bound.
const DefaultStreamMaxLen = 100_000

// StreamPublisher appends events to a Valkey stream with XADD. Each entry
// has the fields id, type, occurredAt and payload (JSON).
type StreamPublisher struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

// NewStreamPublisher returns a publisher writing to stream. A maxLen of zero
// uses DefaultStreamMaxLen.
func NewStreamPublisher(client redis.Cmdable, stream string, maxLen int64) *StreamPublisher {
	if maxLen <= 0 {
		maxLen = DefaultStreamMaxLen
	}
	return &StreamPublisher{client: client, stream: stream, maxLen: maxLen}
}

// Publish implements Publisher.
func (p *StreamPublisher) Publish(ctx context.Context, env Envelope) error {
	payload, err := json.Marshal(env.Payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", env.Type, err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":         env.ID.String(),
			"type":       env.Type,
			"occurredAt": env.OccurredAt.Format(time.RFC3339Nano),
			"payload":    string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}
