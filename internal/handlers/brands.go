// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"catalog/internal/catalog"
)

func brandLocation(id int) string { return "/brands/" + strconv.Itoa(id) }

// ListBrands returns every brand ordered by id.
func (c *Catalog) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := c.svc.ListBrands(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(brands, newBrandResponse))
}

// GetBrand returns a single brand.
func (c *Catalog) GetBrand(w http.ResponseWriter, r *http.Request) {
	b, err := c.svc.GetBrand(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newBrandResponse(b))
}

// CreateBrand handles POST /brands.
func (c *Catalog) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateBrandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := c.svc.CreateBrand(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, brandLocation(b.ID()))
}

// UpdateBrand handles PUT /brands.
func (c *Catalog) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateBrandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := c.svc.RenameBrand(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, brandLocation(b.ID()))
}

// DeleteBrand removes a brand and, through the cascade, its items.
func (c *Catalog) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.DeleteBrand(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
