// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain of the
// catalog API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"catalog/internal/handlers"
	"catalog/internal/middleware"
)

// New creates the chi router with every catalog route. Mutating routes go
// through limiter when it is not nil.
func New(h *handlers.Catalog, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/health", healthHandler)

	limit := func(next http.Handler) http.Handler { return next }
	if limiter != nil {
		limit = limiter.Middleware
	}

	r.Route("/brands", func(r chi.Router) {
		r.Get("/", h.ListBrands)
		r.Get("/{id}", h.GetBrand)
		r.With(limit).Post("/", h.CreateBrand)
		r.With(limit).Put("/", h.UpdateBrand)
		r.With(limit).Delete("/{id}", h.DeleteBrand)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/{id}", h.GetCategory)
		r.With(limit).Post("/", h.CreateCategory)
		r.With(limit).Put("/", h.UpdateCategory)
		r.With(limit).Delete("/{id}", h.DeleteCategory)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Get("/{slug}", h.GetItem)
		r.With(limit).Post("/", h.CreateItem)
		r.With(limit).Put("/", h.UpdateItem)
		r.With(limit).Patch("/max_stock_threshold", h.UpdateMaxStockThreshold)
		r.With(limit).Delete("/{slug}", h.DeleteItem)
		r.With(limit).Post("/{slug}/medias", h.UploadMedia)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"not found"}`))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"method not allowed"}`))
}
