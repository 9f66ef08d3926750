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

// ItemStore manages items in the database.
type ItemStore struct {
	db *sql.DB
}

// NewItemStore returns a new ItemStore.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// itemSelect selects every item column plus the brand and category names.
func itemSelect() sq.SelectBuilder {
	return psql.Select(
		"i.slug", "i.name", "i.description", "i.price", "i.available_stock",
		"i.max_stock_threshold", "i.catalog_brand_id", "i.catalog_category_id",
		"i.medias", "b.brand", "c.category",
	).
		From(itemsTable + " i").
		Join(brandsTable + " b ON b.id = i.catalog_brand_id").
		Join(categoriesTable + " c ON c.id = i.catalog_category_id")
}

func scanItem(row sq.RowScanner) (*models.Item, error) {
	var r models.ItemRecord
	err := row.Scan(
		&r.Slug, &r.Name, &r.Description, &r.Price, &r.AvailableStock,
		&r.MaxStockThreshold, &r.BrandID, &r.CategoryID,
		&r.Medias, &r.BrandName, &r.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return models.RestoreItem(r), nil
}

// List returns all items ordered by name, with brand and category names.
func (s *ItemStore) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := itemSelect().
		OrderBy("i.name", "i.slug").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindBySlug retrieves an item by slug. Returns nil if not found.
func (s *ItemStore) FindBySlug(ctx context.Context, slug string) (*models.Item, error) {
	item, err := scanItem(itemSelect().
		Where(sq.Eq{"i.slug": slug}).
		RunWith(s.db).
		QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item by slug: %w", err)
	}
	return item, nil
}

// ExistsBySlug reports whether an item with the given slug exists.
func (s *ItemStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	found, err := exists(ctx, s.db, itemsTable, sq.Eq{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("item exists by slug: %w", err)
	}
	return found, nil
}

// Create inserts a new item. A slug collision fails with ErrDuplicate and a
// dangling brand or category with ErrForeignKey.
func (s *ItemStore) Create(ctx context.Context, item *models.Item) error {
	_, err := psql.Insert(itemsTable).
		Columns(
			"slug", "name", "description", "price", "available_stock",
			"max_stock_threshold", "catalog_brand_id", "catalog_category_id", "medias",
		).
		Values(
			item.Slug(), item.Name(), item.Description(), item.Price(), item.AvailableStock(),
			item.MaxStockThreshold(), item.BrandID(), item.CategoryID(), item.Medias(),
		).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return classify("create item", err)
	}
	return nil
}

// UpdateDetails writes the item's description, brand and category. Other
// columns are left as stored.
func (s *ItemStore) UpdateDetails(ctx context.Context, item *models.Item) error {
	res, err := psql.Update(itemsTable).
		SetMap(map[string]any{
			"description":         item.Description(),
			"catalog_brand_id":    item.BrandID(),
			"catalog_category_id": item.CategoryID(),
		}).
		Where(sq.Eq{"slug": item.Slug()}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("update item details", res, err)
}

// UpdateMaxStockThreshold sets only the restock threshold of an item.
func (s *ItemStore) UpdateMaxStockThreshold(ctx context.Context, slug string, value int) error {
	res, err := psql.Update(itemsTable).
		Set("max_stock_threshold", value).
		Where(sq.Eq{"slug": slug}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("update max stock threshold", res, err)
}

// AppendMedia adds m to the end of the item's media list in a single
// statement, so concurrent appends and updates never drop an entry.
func (s *ItemStore) AppendMedia(ctx context.Context, slug string, m models.Media) error {
	res, err := psql.Update(itemsTable).
		Set("medias", sq.Expr("medias || ?::jsonb", models.MediaList{m})).
		Where(sq.Eq{"slug": slug}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("append item media", res, err)
}

// Delete removes an item by slug.
func (s *ItemStore) Delete(ctx context.Context, slug string) error {
	res, err := psql.Delete(itemsTable).
		Where(sq.Eq{"slug": slug}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("delete item", res, err)
}
