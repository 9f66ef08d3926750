// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives the natural key of catalog items from their names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches anything that isn't an ASCII letter, digit,
	// whitespace, or hyphen. Unicode letters are dropped, not transliterated.
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	// separators collapses runs of whitespace and hyphens into one hyphen.
	separators = regexp.MustCompile(`[\s-]+`)
)

// Generate creates a lowercase, hyphen-separated slug from the given string.
// Example: "Pro Widget!!" → "pro-widget"
//
// The result only contains [a-z0-9-], never starts or ends with a hyphen and
// never contains two hyphens in a row, so Generate(Generate(s)) == Generate(s).
func Generate(s string) string {
	result := disallowed.ReplaceAllString(s, "")
	result = separators.ReplaceAllString(strings.TrimSpace(result), "-")
	result = strings.Trim(result, "-")
	return strings.ToLower(result)
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return s != "" && Generate(s) == s
}
