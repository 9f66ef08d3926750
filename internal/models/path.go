// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator joins ancestor names in a category path.
const PathSeparator = " > "

var (
	// ErrCategoryCycle is returned when walking parents revisits a node.
	ErrCategoryCycle = errors.New("category parent chain contains a cycle")
	// ErrCategoryMissing is returned when a parent link points nowhere.
	ErrCategoryMissing = errors.New("category parent chain references a missing category")
)

// PathNode is the minimal view of a category needed to walk its ancestry.
type PathNode struct {
	ID       int
	Name     string
	ParentID *int
}

// NodeIndex maps category IDs to nodes.
type NodeIndex map[int]PathNode

// IndexNodes builds a NodeIndex from a slice of nodes.
func IndexNodes(nodes []PathNode) NodeIndex {
	idx := make(NodeIndex, len(nodes))
	for _, n := range nodes {
		idx[n.ID] = n
	}
	return idx
}

// CategoryPath walks from id up to its root and returns the names joined
// root-first, e.g. "Electronics > Computers > Laptops".
func CategoryPath(id int, nodes NodeIndex) (string, error) {
	var names []string
	seen := make(map[int]struct{})

	current := id
	for {
		if _, dup := seen[current]; dup {
			return "", fmt.Errorf("category %d: %w", id, ErrCategoryCycle)
		}
		seen[current] = struct{}{}

		node, ok := nodes[current]
		if !ok {
			return "", fmt.Errorf("category %d (ancestor %d): %w", id, current, ErrCategoryMissing)
		}
		names = append(names, node.Name)

		if node.ParentID == nil {
			break
		}
		current = *node.ParentID
	}

	// Collected leaf-first; reverse for display.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator), nil
}

// WouldCreateCycle reports whether making newParentID the parent of nodeID
// would introduce a cycle, i.e. whether nodeID is newParentID itself or one
// of its ancestors. A broken chain is treated as a cycle.
func WouldCreateCycle(nodeID, newParentID int, nodes NodeIndex) bool {
	seen := make(map[int]struct{})
	current := newParentID
	for {
		if current == nodeID {
			return true
		}
		if _, dup := seen[current]; dup {
			return true
		}
		seen[current] = struct{}{}

		node, ok := nodes[current]
		if !ok {
			return true
		}
		if node.ParentID == nil {
			return false
		}
		current = *node.ParentID
	}
}
