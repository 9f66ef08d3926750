// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"catalog/internal/catalog"
)

func categoryLocation(id int) string { return "/categories/" + strconv.Itoa(id) }

// ListCategories returns every category with its path, ordered by id.
func (c *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAll(categories, newCategoryResponse))
}

// GetCategory returns a single category with its parent and path.
func (c *Catalog) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := c.svc.GetCategory(r.Context(), idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCategoryResponse(cat))
}

// CreateCategory handles POST /categories.
func (c *Catalog) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	cat, err := c.svc.CreateCategory(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, categoryLocation(cat.ID()))
}

// UpdateCategory handles PUT /categories.
func (c *Catalog) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	cat, err := c.svc.RenameCategory(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	created(w, categoryLocation(cat.ID()))
}

// DeleteCategory removes a category that has no children.
func (c *Catalog) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.DeleteCategory(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
