// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the catalog API.
// Handlers decode JSON requests, call the catalog service and map its
// typed errors to status codes in one place (writeError).
package handlers

import (
	"context"

	"catalog/internal/catalog"
	"catalog/internal/models"
)

// Service is the set of catalog operations the handlers call.
// *catalog.Service implements it.
type Service interface {
	CreateBrand(ctx context.Context, req catalog.CreateBrandRequest) (*models.Brand, error)
	RenameBrand(ctx context.Context, req catalog.UpdateBrandRequest) (*models.Brand, error)
	GetBrand(ctx context.Context, id int) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	DeleteBrand(ctx context.Context, id int) error

	CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (*models.Category, error)
	RenameCategory(ctx context.Context, req catalog.UpdateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	CreateItem(ctx context.Context, req catalog.CreateItemRequest) (*models.Item, error)
	UpdateItem(ctx context.Context, req catalog.UpdateItemRequest) (*models.Item, error)
	SetMaxStockThreshold(ctx context.Context, req catalog.UpdateMaxStockThresholdRequest) (*models.Item, error)
	GetItem(ctx context.Context, slug string) (*models.Item, error)
	ListItems(ctx context.Context) ([]*models.Item, error)
	DeleteItem(ctx context.Context, slug string) error
	AttachMedia(ctx context.Context, slug string, upload catalog.MediaUpload) (*models.Item, error)
}

var _ Service = (*catalog.Service)(nil)

// Catalog groups the catalog API handlers.
type Catalog struct {
	svc Service
}

// NewCatalog creates the catalog handler group.
func NewCatalog(svc Service) *Catalog {
	return &Catalog{svc: svc}
}
