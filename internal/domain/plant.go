package domain

import (
	"fmt"
	"strings"
)

// PlantLightRequirement is the illuminance range a plant species thrives in
type PlantLightRequirement struct {
	CanonicalName string
	MinLux        int
	MaxLux        int
	Description   string
}

// Contains reports whether lux falls inside the inclusive [MinLux, MaxLux] range
func (r PlantLightRequirement) Contains(lux float64) bool {
	return lux >= float64(r.MinLux) && lux <= float64(r.MaxLux)
}

// CatalogEntry maps a lowercase keyword to a requirement.
// Several keywords (e.g. Spanish and English names) may share a requirement.
type CatalogEntry struct {
	Keyword     string
	Requirement PlantLightRequirement
}

// Catalog is an immutable, ordered table of plant keywords.
// Entries are scanned in insertion order, which is the tie-break
// when a name contains more than one keyword.
type Catalog struct {
	entries []CatalogEntry
}

// NewCatalog validates and copies entries, normalizing every keyword
func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	seen := make(map[string]struct{}, len(entries))
	normalized := make([]CatalogEntry, 0, len(entries))

	for i, e := range entries {
		keyword := NormalizeName(e.Keyword)
		if keyword == "" {
			return nil, fmt.Errorf("entry %d: empty keyword: %w", i, ErrInvalidCatalog)
		}
		if e.Requirement.MinLux > e.Requirement.MaxLux {
			return nil, fmt.Errorf("entry %q: min lux %d above max lux %d: %w",
				keyword, e.Requirement.MinLux, e.Requirement.MaxLux, ErrInvalidCatalog)
		}
		if _, dup := seen[keyword]; dup {
			return nil, fmt.Errorf("entry %q: %w", keyword, ErrDuplicateKeyword)
		}
		seen[keyword] = struct{}{}

		normalized = append(normalized, CatalogEntry{Keyword: keyword, Requirement: e.Requirement})
	}

	return &Catalog{entries: normalized}, nil
}

// Len returns the number of keywords in the catalog
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog in iteration order
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// NormalizeName trims and lowercases a plant name or keyword
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Matcher resolves free-text plant names against a catalog
type Matcher struct {
	catalog *Catalog
}

// NewMatcher creates a matcher over the given catalog
func NewMatcher(catalog *Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match returns the first entry, in catalog order, whose keyword is a
// substring of the query or contains the query. A blank query matches nothing.
func (m *Matcher) Match(query string) (PlantLightRequirement, bool) {
	q := NormalizeName(query)
	if q == "" {
		return PlantLightRequirement{}, false
	}

	for _, e := range m.catalog.entries {
		if strings.Contains(q, e.Keyword) || strings.Contains(e.Keyword, q) {
			return e.Requirement, true
		}
	}
	return PlantLightRequirement{}, false
}
