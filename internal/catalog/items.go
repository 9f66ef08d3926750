// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"catalog/internal/events"
	"catalog/internal/models"
	"catalog/internal/slug"
	"catalog/internal/store"
)

var (
	errInvalidCategory = &ReferenceError{Message: "A category Id is not valid."}
	errInvalidBrand    = &ReferenceError{Message: "A brand Id is not valid."}
)

func itemNotFound(slug string) error {
	return &NotFoundError{Message: fmt.Sprintf("Item with slug %s not found.", slug)}
}

func itemConflict(slug string) error {
	return &ConflictError{Message: fmt.Sprintf("A Item with the slug '%s' already exists.", slug)}
}

// referenceViolation maps a foreign key violation on the items table to
// the reference that no longer resolves.
func referenceViolation(err error) error {
	var ce *store.ConstraintError
	if errors.As(err, &ce) && strings.Contains(ce.Constraint, "brand") {
		return errInvalidBrand
	}
	return errInvalidCategory
}

// CreateItem stores a new item whose slug is derived from its name, then
// announces it with a CatalogItemAdded event. The event is sent after the
// commit and its delivery never affects the result.
func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, storeError(ctx, "find category", err)
	}
	if category == nil {
		return nil, errInvalidCategory
	}

	brand, err := s.brands.FindByID(ctx, req.BrandID)
	if err != nil {
		return nil, storeError(ctx, "find brand", err)
	}
	if brand == nil {
		return nil, errInvalidBrand
	}

	item := models.NewItem(req.Name, req.Description, req.MaxStockThreshold, req.BrandID, req.CategoryID)

	taken, err := s.items.ExistsBySlug(ctx, item.Slug())
	if err != nil {
		return nil, storeError(ctx, "check item slug", err)
	}
	if taken {
		return nil, itemConflict(item.Slug())
	}

	if err := s.items.Create(ctx, item); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, itemConflict(item.Slug())
		case errors.Is(err, store.ErrForeignKey):
			return nil, referenceViolation(err)
		}
		return nil, storeError(ctx, "create item", err)
	}

	slog.Info("item created", "slug", item.Slug(), "brand_id", item.BrandID(), "category_id", item.CategoryID())

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(events.CatalogItemAdded{
			Name:            item.Name(),
			Description:     item.Description(),
			CatalogCategory: category.Name(),
			CatalogBrand:    brand.Name(),
			Slug:            item.Slug(),
			DetailURL:       s.detailURL(item.Slug()),
		})
	}
	return item, nil
}

// UpdateItem changes an item's description, brand and category.
func (s *Service) UpdateItem(ctx context.Context, req UpdateItemRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.findItem(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	ok, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, storeError(ctx, "check category", err)
	}
	if !ok {
		return nil, errInvalidCategory
	}

	ok, err = s.brands.Exists(ctx, req.BrandID)
	if err != nil {
		return nil, storeError(ctx, "check brand", err)
	}
	if !ok {
		return nil, errInvalidBrand
	}

	item.Update(req.Description, req.BrandID, req.CategoryID)
	if err := itemWriteError(ctx, "update item", item.Slug(), s.items.UpdateDetails(ctx, item)); err != nil {
		return nil, err
	}
	return item, nil
}

// SetMaxStockThreshold changes an item's restock threshold.
func (s *Service) SetMaxStockThreshold(ctx context.Context, req UpdateMaxStockThresholdRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.findItem(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	err = s.items.UpdateMaxStockThreshold(ctx, item.Slug(), req.MaxStockThreshold)
	if err := itemWriteError(ctx, "update max stock threshold", item.Slug(), err); err != nil {
		return nil, err
	}
	item.SetMaxStockThreshold(req.MaxStockThreshold)
	return item, nil
}

// itemWriteError maps the failure of an item write to a catalog error.
func itemWriteError(ctx context.Context, op, slug string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return itemNotFound(slug)
	case errors.Is(err, store.ErrForeignKey):
		return referenceViolation(err)
	}
	return storeError(ctx, op, err)
}

// GetItem returns one item with brand name, category name and media.
func (s *Service) GetItem(ctx context.Context, slug string) (*models.Item, error) {
	if err := validSlug(slug); err != nil {
		return nil, err
	}

	return s.findItem(ctx, slug)
}

// findItem loads an item by slug. A slug that Generate could never have
// produced is reported missing without a store lookup.
func (s *Service) findItem(ctx context.Context, itemSlug string) (*models.Item, error) {
	if !slug.Valid(itemSlug) {
		return nil, itemNotFound(itemSlug)
	}
	item, err := s.items.FindBySlug(ctx, itemSlug)
	if err != nil {
		return nil, storeError(ctx, "find item", err)
	}
	if item == nil {
		return nil, itemNotFound(itemSlug)
	}
	return item, nil
}

// ListItems returns all items ordered by name.
func (s *Service) ListItems(ctx context.Context) ([]*models.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list items", err)
	}
	return items, nil
}

// DeleteItem removes an item by slug.
func (s *Service) DeleteItem(ctx context.Context, slug string) error {
	if err := validSlug(slug); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return itemNotFound(slug)
		}
		return storeError(ctx, "delete item", err)
	}

	slog.Info("item deleted", "slug", slug)
	return nil
}
