// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"catalog/internal/models"
)

// maxCategoryDepth bounds the recursive ancestor query so a corrupted
// parent chain cannot make it loop forever.
const maxCategoryDepth = 100

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// scanNodes reads (id, category, parent_id) rows.
func scanNodes(rows *sql.Rows) ([]models.PathNode, error) {
	defer rows.Close()

	nodes := []models.PathNode{}
	for rows.Next() {
		var n models.PathNode
		if err := rows.Scan(&n.ID, &n.Name, &n.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// AllNodes returns the (id, name, parent) triple of every category ordered
// by id.
func (s *CategoryStore) AllNodes(ctx context.Context) ([]models.PathNode, error) {
	rows, err := psql.Select("id", "category", "parent_id").
		From(categoriesTable).
		OrderBy("id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("category nodes: %w", err)
	}
	nodes, err := scanNodes(rows)
	if err != nil {
		return nil, fmt.Errorf("category nodes: %w", err)
	}
	return nodes, nil
}

// List returns all categories ordered by id, each with its derived path.
func (s *CategoryStore) List(ctx context.Context) ([]*models.Category, error) {
	nodes, err := s.AllNodes(ctx)
	if err != nil {
		return nil, err
	}

	// Every ancestor is in the same result set, so paths need no more queries.
	idx := models.IndexNodes(nodes)
	categories := make([]*models.Category, 0, len(nodes))
	for _, n := range nodes {
		path, err := models.CategoryPath(n.ID, idx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, models.RestoreCategory(n.ID, n.Name, n.ParentID).WithPath(path))
	}
	return categories, nil
}

// FindByID retrieves a category with its derived path. Returns nil if not found.
func (s *CategoryStore) FindByID(ctx context.Context, id int) (*models.Category, error) {
	chain, err := s.AncestorChain(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, nil
	}

	path, err := models.CategoryPath(id, models.IndexNodes(chain))
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	self := chain[0]
	return models.RestoreCategory(self.ID, self.Name, self.ParentID).WithPath(path), nil
}

// AncestorChain returns the category followed by its ancestors up to the
// root. The result is empty if the category does not exist.
func (s *CategoryStore) AncestorChain(ctx context.Context, id int) ([]models.PathNode, error) {
	rows, err := s.db.QueryContext(ctx, `
		WITH RECURSIVE chain AS (
			SELECT id, category, parent_id, 0 AS depth
			FROM `+categoriesTable+`
			WHERE id = $1
			UNION ALL
			SELECT c.id, c.category, c.parent_id, chain.depth + 1
			FROM `+categoriesTable+` c
			JOIN chain ON c.id = chain.parent_id
			WHERE chain.depth < $2
		)
		SELECT id, category, parent_id FROM chain ORDER BY depth
	`, id, maxCategoryDepth)
	if err != nil {
		return nil, fmt.Errorf("category ancestors: %w", err)
	}
	nodes, err := scanNodes(rows)
	if err != nil {
		return nil, fmt.Errorf("category ancestors: %w", err)
	}
	return nodes, nil
}

// Exists reports whether a category with the given id exists.
func (s *CategoryStore) Exists(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, s.db, categoriesTable, sq.Eq{"id": id})
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return found, nil
}

// ExistsByNameAndParent reports whether a sibling with this name exists
// under parentID (nil for the root level).
func (s *CategoryStore) ExistsByNameAndParent(ctx context.Context, name string, parentID *int) (bool, error) {
	pred := sq.Eq{"category": name, "parent_id": nil}
	if parentID != nil {
		pred["parent_id"] = *parentID
	}
	found, err := exists(ctx, s.db, categoriesTable, pred)
	if err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}
	return found, nil
}

// HasChildren reports whether any category has id as its parent.
func (s *CategoryStore) HasChildren(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, s.db, categoriesTable, sq.Eq{"parent_id": id})
	if err != nil {
		return false, fmt.Errorf("category has children: %w", err)
	}
	return found, nil
}

// Create inserts a new category and assigns its generated id.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	var id int
	err := psql.Insert(categoriesTable).
		Columns("category", "parent_id").
		Values(c.Name(), c.ParentID()).
		Suffix("RETURNING id").
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return classify("create category", err)
	}
	c.Assign(id)
	return nil
}

// Update writes the category's current name. The parent is never updated.
func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	res, err := psql.Update(categoriesTable).
		Set("category", c.Name()).
		Where(sq.Eq{"id": c.ID()}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("update category", res, err)
}

// Delete removes a category by ID. The self-referencing foreign key has no
// cascade, so deleting a category that still has children fails with
// ErrForeignKey. Items in the category are removed by cascade.
func (s *CategoryStore) Delete(ctx context.Context, id int) error {
	res, err := psql.Delete(categoriesTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	return affectedOne("delete category", res, err)
}
