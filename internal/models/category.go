// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a node in the category forest. The (name, parent) pair is
// unique, and the parent is fixed at creation.
type Category struct {
	id       int
	name     string
	parentID *int
	path     string
}

// NewCategory creates an unsaved category under parentID (nil for a root).
func NewCategory(name string, parentID *int) *Category {
	return &Category{name: name, parentID: copyID(parentID)}
}

// RestoreCategory rebuilds a category from a stored row.
func RestoreCategory(id int, name string, parentID *int) *Category {
	return &Category{id: id, name: name, parentID: copyID(parentID)}
}

// ID returns the store-assigned identifier.
func (c *Category) ID() int { return c.id }

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// ParentID returns a copy of the parent identifier, or nil for a root.
func (c *Category) ParentID() *int { return copyID(c.parentID) }


// Path returns the derived ancestry string, empty until WithPath is called.
func (c *Category) Path() string { return c.path }

// Rename changes the category name. The parent cannot be changed.
func (c *Category) Rename(name string) {
	c.name = name
}

// Assign records the identifier handed out by the store on insert.
func (c *Category) Assign(id int) {
	if c.id == 0 {
		c.id = id
	}
}

// WithPath attaches the derived materialized path and returns the category.
func (c *Category) WithPath(path string) *Category {
	c.path = path
	return c
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
