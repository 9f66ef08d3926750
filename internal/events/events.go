// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package events carries the catalog's outbound integration events.
// Delivery is at-most-once and best-effort: events are published after the
// write they describe has committed, and a failed publish is logged and
// dropped. Retries and durability belong to the broker.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a domain event that can be published to the broker.
type Event interface {
	Type() string
}

// TypeCatalogItemAdded identifies CatalogItemAdded on the wire.
const TypeCatalogItemAdded = "catalog.item.added"

// CatalogItemAdded is emitted after a new item has been stored.
// CatalogCategory and CatalogBrand carry display names, not ids.
type CatalogItemAdded struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	CatalogCategory string `json:"catalogCategory"`
	CatalogBrand    string `json:"catalogBrand"`
	Slug            string `json:"slug"`
	DetailURL       string `json:"detailUrl"`
}

// Type implements Event.
func (CatalogItemAdded) Type() string { return TypeCatalogItemAdded }

// Envelope wraps an event with the metadata consumers need to
// de-duplicate and order it.
type Envelope struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    Event     `json:"payload"`
}

// NewEnvelope stamps e with a fresh id and the current time.
func NewEnvelope(e Event) Envelope {
	return Envelope{
		ID:         uuid.New(),
		Type:       e.Type(),
		OccurredAt: time.Now().UTC(),
		Payload:    e,
	}
}

// Publisher hands an envelope to the broker.
type Publisher interface {
	Publish(ctx context.Context, env Envelope) error
}
