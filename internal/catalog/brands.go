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

func brandNotFound(id int) error {
	return &NotFoundError{Message: fmt.Sprintf("Brand with id %d not found.", id)}
}

func brandConflict(name string) error {
	return &ConflictError{Message: fmt.Sprintf("A brand with the name '%s' already exists.", name)}
}

// CreateBrand stores a new brand with a unique name.
func (s *Service) CreateBrand(ctx context.Context, req CreateBrandRequest) (*models.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.brands.ExistsByName(ctx, req.Brand)
	if err != nil {
		return nil, storeError(ctx, "check brand name", err)
	}
	if taken {
		return nil, brandConflict(req.Brand)
	}

	brand := models.NewBrand(req.Brand)
	if err := s.brands.Create(ctx, brand); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, brandConflict(req.Brand)
		}
		return nil, storeError(ctx, "create brand", err)
	}

	slog.Info("brand created", "brand_id", brand.ID(), "brand", brand.Name())
	return brand, nil
}

// RenameBrand changes the name of an existing brand.
func (s *Service) RenameBrand(ctx context.Context, req UpdateBrandRequest) (*models.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	brand, err := s.brands.FindByID(ctx, req.ID)
	if err != nil {
		return nil, storeError(ctx, "find brand", err)
	}
	if brand == nil {
		return nil, brandNotFound(req.ID)
	}

	brand.Rename(req.Brand)
	if err := s.brands.Update(ctx, brand); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, brandConflict(req.Brand)
		case errors.Is(err, store.ErrNotFound):
			return nil, brandNotFound(req.ID)
		}
		return nil, storeError(ctx, "update brand", err)
	}
	return brand, nil
}

// GetBrand returns one brand.
func (s *Service) GetBrand(ctx context.Context, id int) (*models.Brand, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, "find brand", err)
	}
	if brand == nil {
		return nil, brandNotFound(id)
	}
	return brand, nil
}

// ListBrands returns all brands ordered by id.
func (s *Service) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list brands", err)
	}
	return brands, nil
}

// DeleteBrand removes a brand and, by cascade, its items.
func (s *Service) DeleteBrand(ctx context.Context, id int) error {
	if err := validID(id); err != nil {
		return err
	}

	if err := s.brands.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return brandNotFound(id)
		}
		return storeError(ctx, "delete brand", err)
	}

	slog.Info("brand deleted", "brand_id", id)
	return nil
}
