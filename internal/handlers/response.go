// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

type brandResponse struct {
	ID    int    `json:"id"`
	Brand string `json:"brand"`
}

func newBrandResponse(b *models.Brand) brandResponse {
	return brandResponse{ID: b.ID(), Brand: b.Name()}
}

type categoryResponse struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	ParentID *int   `json:"parentId"`
	Path     string `json:"path"`
}

func newCategoryResponse(c *models.Category) categoryResponse {
	return categoryResponse{ID: c.ID(), Category: c.Name(), ParentID: c.ParentID(), Path: c.Path()}
}

// itemResponse is the public shape of an item. Price is encoded as a
// decimal string.
type itemResponse struct {
	Name              string           `json:"name"`
	Slug              string           `json:"slug"`
	Description       string           `json:"description"`
	BrandID           int              `json:"brandId"`
	BrandName         string           `json:"brandName"`
	CategoryID        int              `json:"categoryId"`
	CategoryName      string           `json:"categoryName"`
	Price             decimal.Decimal  `json:"price"`
	AvailableStock    int              `json:"availableStock"`
	MaxStockThreshold int              `json:"maxStockThreshold"`
	Medias            models.MediaList `json:"medias"`
}

func newItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		Name:              i.Name(),
		Slug:              i.Slug(),
		Description:       i.Description(),
		BrandID:           i.BrandID(),
		BrandName:         i.BrandName(),
		CategoryID:        i.CategoryID(),
		CategoryName:      i.CategoryName(),
		Price:             i.Price(),
		AvailableStock:    i.AvailableStock(),
		MaxStockThreshold: i.MaxStockThreshold(),
		Medias:            i.Medias(),
	}
}

// mapAll converts a list, never returning nil so empty lists encode as [].
func mapAll[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
