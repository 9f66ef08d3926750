package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// psql builds PostgreSQL-flavoured statements ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Seed populates the database with a small sample catalog for development.
// It does nothing if any brand already exists, and every insert tolerates
// rows that appeared concurrently.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := psql.Select("COUNT(*)").
		From("catalog.catalog_brands").
		RunWith(db).
		QueryRowContext(ctx).
		Scan(&count); err != nil {
		return fmt.Errorf("seed check brands: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var brandID int
	if err := psql.Insert("catalog.catalog_brands").
		Columns("brand").
		Values("Acme").
		Suffix("ON CONFLICT (brand) DO UPDATE SET brand = EXCLUDED.brand RETURNING id").
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&brandID); err != nil {
		return fmt.Errorf("seed insert brand: %w", err)
	}

	rootID, err := seedCategory(ctx, tx, "Electronics", nil)
	if err != nil {
		return fmt.Errorf("seed insert root category: %w", err)
	}
	childID, err := seedCategory(ctx, tx, "Laptops", rootID)
	if err != nil {
		return fmt.Errorf("seed insert child category: %w", err)
	}

	_, err = psql.Insert("catalog.catalog_items").
		Columns(
			"slug", "name", "description", "price", "available_stock",
			"max_stock_threshold", "catalog_brand_id", "catalog_category_id",
		).
		Values(
			"acme-laptop-14", "Acme Laptop 14", "A 14-inch everyday laptop.",
			decimal.RequireFromString("899.00"), 12, 50, brandID, childID,
		).
		Suffix("ON CONFLICT (slug) DO NOTHING").
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("seed insert item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample catalog",
		"brand_id", brandID,
		"category_id", childID,
	)
	return nil
}

// seedCategory inserts a category, or finds the existing one with the same
// name and parent, and returns its id.
func seedCategory(ctx context.Context, tx *sql.Tx, name string, parentID any) (int, error) {
	var id int
	err := psql.Insert("catalog.catalog_categories").
		Columns("category", "parent_id").
		Values(name, parentID).
		Suffix("ON CONFLICT (category, COALESCE(parent_id, 0)) DO UPDATE SET category = EXCLUDED.category RETURNING id").
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&id)
	return id, err
}
