// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"catalog/internal/models"
)

// BrandStore manages brands in the database.
type BrandStore struct {
	db *sql.DB
}

// NewBrandStore returns a new BrandStore.
func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

// List returns all brands ordered by id.
func (s *BrandStore) List(ctx context.Context) ([]*models.Brand, error) {
	rows, err := psql.Select("id", "brand").
		From(brandsTable).
		OrderBy("id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	brands := []*models.Brand{}
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, models.RestoreBrand(id, name))
	}
	return brands, rows.Err()
}

// FindByID retrieves a brand by ID. Returns nil if not found.
func (s *BrandStore) FindByID(ctx context.Context, id int) (*models.Brand, error) {
	var name string
	err := psql.Select("brand").
		From(brandsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand by id: %w", err)
	}
	return models.RestoreBrand(id, name), nil
}

// Exists reports whether a brand with the given id exists.
func (s *BrandStore) Exists(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, s.db, brandsTable, sq.Eq{"id": id})
	if err != nil {
		return false, fmt.Errorf("brand exists: %w", err)
	}
	return found, nil
}

// ExistsByName reports whether a brand with exactly this name exists.
func (s *BrandStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, s.db, brandsTable, sq.Eq{"brand": name})
	if err != nil {
		return false, fmt.Errorf("brand exists by name: %w", err)
	}
	return found, nil
}

// Create inserts a new brand and assigns its generated id.
func (s *BrandStore) Create(ctx context.Context, b *models.Brand) error {
	var id int
	err := psql.Insert(brandsTable).
		Columns("brand").
		Values(b.Name()).
		Suffix("RETURNING id").
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return classify("create brand", err)
	}
	b.Assign(id)
	return nil
}

// Update writes the brand's current name.
func (s *BrandStore) Update(ctx context.Context, b *models.Brand) error {
	res, err := psql.Update(brandsTable).
		Set("brand", b.Name()).
		Where(sq.Eq{"id": b.ID()}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("update brand", res, err)
}

// Delete removes a brand by ID. Items of the brand are removed by the
// ON DELETE CASCADE foreign key.
func (s *BrandStore) Delete(ctx context.Context, id int) error {
	res, err := psql.Delete(brandsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("delete brand", res, err)
}
