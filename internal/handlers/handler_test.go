// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides a stub service and a chi router for handler
// tests. No database is needed.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"catalog/internal/catalog"
	"catalog/internal/models"
)

// stubService returns canned values and records the last request it saw.
type stubService struct {
	err error

	brand    *models.Brand
	brands   []*models.Brand
	category *models.Category
	cats     []*models.Category
	item     *models.Item
	items    []*models.Item

	lastReq  any
	lastID   int
	lastSlug string
	upload   catalog.MediaUpload
	uploaded []byte
}

func (s *stubService) CreateBrand(_ context.Context, req catalog.CreateBrandRequest) (*models.Brand, error) {
	s.lastReq = req
	return s.brand, s.err
}

func (s *stubService) RenameBrand(_ context.Context, req catalog.UpdateBrandRequest) (*models.Brand, error) {
	s.lastReq = req
	return s.brand, s.err
}

func (s *stubService) GetBrand(_ context.Context, id int) (*models.Brand, error) {
	s.lastID = id
	return s.brand, s.err
}

func (s *stubService) ListBrands(context.Context) ([]*models.Brand, error) {
	return s.brands, s.err
}

func (s *stubService) DeleteBrand(_ context.Context, id int) error {
	s.lastID = id
	return s.err
}

func (s *stubService) CreateCategory(_ context.Context, req catalog.CreateCategoryRequest) (*models.Category, error) {
	s.lastReq = req
	return s.category, s.err
}

func (s *stubService) RenameCategory(_ context.Context, req catalog.UpdateCategoryRequest) (*models.Category, error) {
	s.lastReq = req
	return s.category, s.err
}

func (s *stubService) GetCategory(_ context.Context, id int) (*models.Category, error) {
	s.lastID = id
	return s.category, s.err
}

func (s *stubService) ListCategories(context.Context) ([]*models.Category, error) {
	return s.cats, s.err
}

func (s *stubService) DeleteCategory(_ context.Context, id int) error {
	s.lastID = id
	return s.err
}

func (s *stubService) CreateItem(_ context.Context, req catalog.CreateItemRequest) (*models.Item, error) {
	s.lastReq = req
	return s.item, s.err
}

func (s *stubService) UpdateItem(_ context.Context, req catalog.UpdateItemRequest) (*models.Item, error) {
	s.lastReq = req
	return s.item, s.err
}

func (s *stubService) SetMaxStockThreshold(_ context.Context, req catalog.UpdateMaxStockThresholdRequest) (*models.Item, error) {
	s.lastReq = req
	return s.item, s.err
}

func (s *stubService) GetItem(_ context.Context, slug string) (*models.Item, error) {
	s.lastSlug = slug
	return s.item, s.err
}

func (s *stubService) ListItems(context.Context) ([]*models.Item, error) {
	return s.items, s.err
}

func (s *stubService) DeleteItem(_ context.Context, slug string) error {
	s.lastSlug = slug
	return s.err
}

func (s *stubService) AttachMedia(_ context.Context, slug string, upload catalog.MediaUpload) (*models.Item, error) {
	s.lastSlug = slug
	s.upload = upload
	if upload.Body != nil {
		s.uploaded, _ = io.ReadAll(upload.Body)
	}
	return s.item, s.err
}

// testRouter mounts the handlers on the same paths as the real router.
func testRouter(svc Service) http.Handler {
	h := NewCatalog(svc)
	r := chi.NewRouter()
	r.Route("/brands", func(r chi.Router) {
		r.Get("/", h.ListBrands)
		r.Post("/", h.CreateBrand)
		r.Put("/", h.UpdateBrand)
		r.Get("/{id}", h.GetBrand)
		r.Delete("/{id}", h.DeleteBrand)
	})
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Post("/", h.CreateCategory)
		r.Put("/", h.UpdateCategory)
		r.Get("/{id}", h.GetCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Post("/", h.CreateItem)
		r.Put("/", h.UpdateItem)
		r.Patch("/max_stock_threshold", h.UpdateMaxStockThreshold)
		r.Get("/{slug}", h.GetItem)
		r.Delete("/{slug}", h.DeleteItem)
		r.Post("/{slug}/medias", h.UploadMedia)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func intPtr(v int) *int { return &v }
