// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalog/internal/catalog"
)

// ListItems returns every item ordered by name.
func (c *Catalog) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(items, newItemResponse))
}

// GetItem returns an item with its brand, category and media.
func (c *Catalog) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := c.svc.GetItem(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newItemResponse(item))
}

// CreateItem handles POST /items.
func (c *Catalog) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := c.svc.CreateItem(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, catalog.ItemPath(item.Slug()))
}

// UpdateItem handles PUT /items.
func (c *Catalog) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := c.svc.UpdateItem(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, catalog.ItemPath(item.Slug()))
}

// UpdateMaxStockThreshold handles PATCH /items/max_stock_threshold.
func (c *Catalog) UpdateMaxStockThreshold(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateMaxStockThresholdRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := c.svc.SetMaxStockThreshold(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, catalog.ItemPath(item.Slug()))
}

// DeleteItem removes an item by slug.
func (c *Catalog) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.DeleteItem(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
