package domain

import "strings"

// MovieRecord represents one catalog entry, keyed by its normalized name.
type MovieRecord struct {
	Name  string
	ID    string
	Genre string
}

// Catalog maps a normalized movie name to its record. It is built once per
// load and treated as read-only by every query.
type Catalog map[string]MovieRecord

// Normalize produces the canonical form used for catalog keys, rating store
// keys, and query lookups.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
