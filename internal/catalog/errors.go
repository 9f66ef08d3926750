// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrCanceled is returned when the caller's context ended before the
	// operation finished. It wraps context.Canceled or
	// context.DeadlineExceeded so callers can tell the two apart.
	ErrCanceled = errors.New("request canceled")

	// ErrStorageDisabled is returned by media operations when no object
	// storage is configured.
	ErrStorageDisabled = errors.New("media storage is not configured")
)

// ValidationError reports malformed input, keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// fieldError returns a ValidationError with a single message.
func fieldError(field, msg string) *ValidationError {
	e := &ValidationError{}
	e.add(field, msg)
	return e
}

// ReferenceError reports a brand, category or parent id that does not
// resolve to an existing row.
type ReferenceError struct{ Message string }

func (e *ReferenceError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation, whether caught by a
// pre-check or by the database.
type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports that no entity has the requested id or slug.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

// PreconditionError reports a valid request that the current state
// forbids, such as deleting a category that still has children.
type PreconditionError struct{ Message string }

func (e *PreconditionError) Error() string { return e.Message }

// storeError wraps a repository failure, turning context cancellation into
// ErrCanceled.
func storeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrCanceled, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		// The driver may report a torn-down query as a generic error.
		return fmt.Errorf("%s: %w: %w: %w", op, ErrCanceled, ctxErr, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
