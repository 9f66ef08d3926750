// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the catalog's use cases: validation, integrity
// checks against the store, entity mutation and event dispatch.
//
// Every mutating operation runs the same pipeline: validate the request,
// check referenced and conflicting rows, mutate the entity, commit, and for
// item creation dispatch an event. The existence checks give good error
// messages but are not atomic with the write; the database constraints are
// the final authority and their violations are mapped back to the same
// ConflictError and ReferenceError values.
package catalog

import (
	"context"
	"io"
	"strings"

	"catalog/internal/events"
	"catalog/internal/models"
)

// BrandRepository persists brands.
type BrandRepository interface {
	List(ctx context.Context) ([]*models.Brand, error)
	FindByID(ctx context.Context, id int) (*models.Brand, error)
	Exists(ctx context.Context, id int) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, b *models.Brand) error
	Update(ctx context.Context, b *models.Brand) error
	Delete(ctx context.Context, id int) error
}

// CategoryRepository persists categories. Lookups return categories with
// their derived path.
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	FindByID(ctx context.Context, id int) (*models.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
	ExistsByNameAndParent(ctx context.Context, name string, parentID *int) (bool, error)
	HasChildren(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int) error
}

// ItemRepository persists items. Lookups resolve brand and category names.
// Each write touches only the columns its operation owns.
type ItemRepository interface {
	List(ctx context.Context) ([]*models.Item, error)
	FindBySlug(ctx context.Context, slug string) (*models.Item, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, item *models.Item) error
	UpdateDetails(ctx context.Context, item *models.Item) error
	UpdateMaxStockThreshold(ctx context.Context, slug string, value int) error
	AppendMedia(ctx context.Context, slug string, m models.Media) error
	Delete(ctx context.Context, slug string) error
}

// EventDispatcher sends events without waiting for delivery.
type EventDispatcher interface {
	Dispatch(e events.Event)
}

// MediaStorage stores uploaded media files and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service implements the catalog operations. It holds no entity state;
// every read goes to the repositories.
type Service struct {
	brands     BrandRepository
	categories CategoryRepository
	items      ItemRepository
	dispatcher EventDispatcher
	media      MediaStorage
	publicURL  string
}

// NewService returns a Service. dispatcher and media may be nil: events are
// then not sent and media uploads fail with ErrStorageDisabled. publicURL
// prefixes the detail URL carried by item events.
func NewService(brands BrandRepository, categories CategoryRepository, items ItemRepository, dispatcher EventDispatcher, media MediaStorage, publicURL string) *Service {
	return &Service{
		brands:     brands,
		categories: categories,
		items:      items,
		dispatcher: dispatcher,
		media:      media,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

// ItemPath returns the resource path of the item with the given slug.
func ItemPath(slug string) string { return "/items/" + slug }

// detailURL returns the absolute URL of an item for event consumers.
func (s *Service) detailURL(slug string) string {
	return s.publicURL + ItemPath(slug)
}
