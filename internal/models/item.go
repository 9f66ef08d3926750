// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"github.com/shopspring/decimal"

	"catalog/internal/slug"
)

// Item is a sellable catalog entry identified externally by its slug.
// The slug is derived from the name once, at creation, and never changes.
type Item struct {
	slug              string
	name              string
	description       string
	price             decimal.Decimal
	availableStock    int
	maxStockThreshold int
	brandID           int
	categoryID        int
	medias            MediaList

	// Display names resolved by joins on read; empty on new items.
	brandName    string
	categoryName string
}

// NewItem creates an unsaved item, deriving its slug from name.
// Price and available stock start at zero.
func NewItem(name, description string, maxStockThreshold, brandID, categoryID int) *Item {
	return &Item{
		slug:              slug.Generate(name),
		name:              name,
		description:       description,
		price:             decimal.Zero,
		maxStockThreshold: maxStockThreshold,
		brandID:           brandID,
		categoryID:        categoryID,
		medias:            MediaList{},
	}
}

// ItemRecord carries every stored column of an item; it is only used to
// rebuild items from the database.
type ItemRecord struct {
	Slug              string
	Name              string
	Description       string
	Price             decimal.Decimal
	AvailableStock    int
	MaxStockThreshold int
	BrandID           int
	CategoryID        int
	Medias            MediaList
	BrandName         string
	CategoryName      string
}

// RestoreItem rebuilds an item from a stored row.
func RestoreItem(r ItemRecord) *Item {
	medias := r.Medias
	if medias == nil {
		medias = MediaList{}
	}
	return &Item{
		slug:              r.Slug,
		name:              r.Name,
		description:       r.Description,
		price:             r.Price,
		availableStock:    r.AvailableStock,
		maxStockThreshold: r.MaxStockThreshold,
		brandID:           r.BrandID,
		categoryID:        r.CategoryID,
		medias:            medias,
		brandName:         r.BrandName,
		categoryName:      r.CategoryName,
	}
}

func (i *Item) Slug() string           { return i.slug }
func (i *Item) Name() string           { return i.name }
func (i *Item) Description() string    { return i.description }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) AvailableStock() int    { return i.availableStock }
func (i *Item) MaxStockThreshold() int { return i.maxStockThreshold }
func (i *Item) BrandID() int           { return i.brandID }
func (i *Item) CategoryID() int        { return i.categoryID }
func (i *Item) BrandName() string      { return i.brandName }
func (i *Item) CategoryName() string   { return i.categoryName }

// Medias returns a copy of the ordered media list.
func (i *Item) Medias() MediaList {
	out := make(MediaList, len(i.medias))
	copy(out, i.medias)
	return out
}

// Update changes the mutable descriptive fields. Name and slug are fixed.
// Resolved brand/category names are cleared when the reference changes.
func (i *Item) Update(description string, brandID, categoryID int) {
	i.description = description
	if brandID != i.brandID {
		i.brandID = brandID
		i.brandName = ""
	}
	if categoryID != i.categoryID {
		i.categoryID = categoryID
		i.categoryName = ""
	}
}

// SetMaxStockThreshold changes the restock threshold.
func (i *Item) SetMaxStockThreshold(value int) {
	i.maxStockThreshold = value
}

// AddMedia appends a media attachment at the end of the list.
func (i *Item) AddMedia(m Media) {
	i.medias = append(i.medias, m)
}
