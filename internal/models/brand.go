// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the catalog entities. Fields that carry invariants
// are unexported; callers change them only through the named operations.
package models

// Brand is a product manufacturer or label. Names are unique across brands.
type Brand struct {
	id   int
	name string
}

// NewBrand creates a brand that has not been persisted yet (ID is zero).
func NewBrand(name string) *Brand {
	return &Brand{name: name}
}

// RestoreBrand rebuilds a brand from a stored row.
func RestoreBrand(id int, name string) *Brand {
	return &Brand{id: id, name: name}
}

// ID returns the store-assigned identifier, zero before the first insert.
func (b *Brand) ID() int { return b.id }

// Name returns the brand name.
func (b *Brand) Name() string { return b.name }

// Rename changes the brand name.
func (b *Brand) Rename(name string) {
	b.name = name
}

// Assign records the identifier handed out by the store on insert.
// It only takes effect once.
func (b *Brand) Assign(id int) {
	if b.id == 0 {
		b.id = id
	}
}
