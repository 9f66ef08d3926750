// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/store"
)

var (
	errInvalidParent = &ReferenceError{Message: "A parent Id is not valid."}
	errHasChildren   = &PreconditionError{Message: "The category has child categories and cannot be deleted."}
)

func categoryNotFound(id int) error {
	return &NotFoundError{Message: fmt.Sprintf("Category with id %d not found.", id)}
}

func categoryConflict(name string) error {
	return &ConflictError{Message: fmt.Sprintf("A Category with the name '%s' in this level already exists.", name)}
}

// CreateCategory stores a new category under an optional parent. The name
// must be unique among its siblings.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		ok, err := s.categories.Exists(ctx, *req.ParentID)
		if err != nil {
			return nil, storeError(ctx, "check parent category", err)
		}
		if !ok {
			return nil, errInvalidParent
		}
	}

	taken, err := s.categories.ExistsByNameAndParent(ctx, req.Category, req.ParentID)
	if err != nil {
		return nil, storeError(ctx, "check category name", err)
	}
	if taken {
		return nil, categoryConflict(req.Category)
	}

	category := models.NewCategory(req.Category, req.ParentID)
	if err := s.categories.Create(ctx, category); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, categoryConflict(req.Category)
		case errors.Is(err, store.ErrForeignKey):
			// The parent was deleted after the check.
			return nil, errInvalidParent
		}
		return nil, storeError(ctx, "create category", err)
	}

	slog.Info("category created", "category_id", category.ID(), "category", category.Name())
	return category, nil
}

// RenameCategory changes the name of an existing category. Its parent is
// never changed.
func (s *Service) RenameCategory(ctx context.Context, req UpdateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, req.ID)
	if err != nil {
		return nil, storeError(ctx, "find category", err)
	}
	if category == nil {
		return nil, categoryNotFound(req.ID)
	}

	category.Rename(req.Category)
	if err := s.categories.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, categoryConflict(req.Category)
		case errors.Is(err, store.ErrNotFound):
			return nil, categoryNotFound(req.ID)
		}
		return nil, storeError(ctx, "update category", err)
	}
	return category, nil
}

// GetCategory returns one category with its parent id and path.
func (s *Service) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, "find category", err)
	}
	if category == nil {
		return nil, categoryNotFound(id)
	}
	return category, nil
}

// ListCategories returns all categories ordered by id, with paths.
func (s *Service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list categories", err)
	}
	return categories, nil
}

// DeleteCategory removes a category that has no children. Its items are
// removed by cascade.
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	if err := validID(id); err != nil {
		return err
	}

	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return storeError(ctx, "check category", err)
	}
	if !ok {
		return categoryNotFound(id)
	}

	hasChildren, err := s.categories.HasChildren(ctx, id)
	if err != nil {
		return storeError(ctx, "check category children", err)
	}
	if hasChildren {
		return errHasChildren
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrForeignKey):
			// A child was added after the check.
			return errHasChildren
		case errors.Is(err, store.ErrNotFound):
			return categoryNotFound(id)
		}
		return storeError(ctx, "delete category", err)
	}

	slog.Info("category deleted", "category_id", id)
	return nil
}
