// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the catalog's PostgreSQL persistence. Each store
// owns one table; lookups return (nil, nil) when a row does not exist.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// Table names, all in the catalog schema.
const (
	brandsTable     = "catalog.catalog_brands"
	categoriesTable = "catalog.catalog_categories"
	itemsTable      = "catalog.catalog_items"
)

// PostgreSQL error codes the stores translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("store: duplicate key")
	// ErrForeignKey is returned when a write violates a foreign key.
	ErrForeignKey = errors.New("store: foreign key violation")
	// ErrNotFound is returned when an update or delete matched no row.
	ErrNotFound = errors.New("store: row not found")
)

// psql builds PostgreSQL-flavoured statements ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ConstraintError wraps a constraint violation with the constraint name.
type ConstraintError struct {
	Kind       error // ErrDuplicate or ErrForeignKey
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() []error { return []error{e.Kind, e.Err} }

// classify maps PostgreSQL constraint violations to the store's sentinel
// errors and wraps everything with op.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, &ConstraintError{Kind: ErrDuplicate, Constraint: pgErr.ConstraintName, Err: err})
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, &ConstraintError{Kind: ErrForeignKey, Constraint: pgErr.ConstraintName, Err: err})
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// exists runs SELECT EXISTS (SELECT 1 FROM table WHERE pred).
func exists(ctx context.Context, runner sq.BaseRunner, table string, pred any) (bool, error) {
	var found bool
	err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(pred).
		Suffix(")").
		RunWith(runner).
		QueryRowContext(ctx).
		Scan(&found)
	return found, err
}

// affectedOne checks the result of an update or delete by key and turns a
// zero-row outcome into ErrNotFound.
func affectedOne(op string, res sql.Result, err error) error {
	if err != nil {
		return classify(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
