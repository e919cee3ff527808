// Package board holds the pure list algorithms over event records: ordering,
// per category counts, selector filtering and link derivation
package board

import (
	"cmp"
	"slices"
	"strings"

	"eventboard/internal/core/catalog"
)

// Record is one normalized event
type Record struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  catalog.ID `json:"category"`
	CreatedAt int64      `json:"created_at"` // epoch millis
}

// Selector is either All or a category id
type Selector string

// All selects every record
const All Selector = "all"

// IsAll reports whether s selects every record
func (s Selector) IsAll() bool { return s == All }

// Category returns s as a category id. Meaningless for All
func (s Selector) Category() catalog.ID { return catalog.ID(s) }

// ParseSelector reads a user supplied selector. Empty and "all" mean All. A
// configured category id is returned as is. Anything else is returned as is
// with ok false, so callers choose between rejecting it and rendering the
// empty view it filters to
func ParseSelector(raw string, cat *catalog.Catalog) (Selector, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == string(All) {
		return All, true
	}
	return Selector(raw), cat.Has(catalog.ID(raw))
}

// Sort returns a new slice ordered by CreatedAt descending. Ties keep their
// input order
func Sort(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

// Filter returns the records matching sel in their input order. The result is
// always a fresh slice, even for All
func Filter(records []Record, sel Selector) []Record {
	if sel.IsAll() {
		return slices.Clone(records)
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Category == sel.Category() {
			out = append(out, r)
		}
	}
	return out
}

// Counts is the per category tally of a record set
type Counts struct {
	ByCategory map[catalog.ID]int `json:"by_category"`
	Total      int                `json:"total"`
}

// Count tallies records per configured category. Every configured id is
// present, zero included. Records whose category is not configured count only
// towards Total
func Count(records []Record, cat *catalog.Catalog) Counts {
	c := Counts{ByCategory: make(map[catalog.ID]int, cat.Len()), Total: len(records)}
	for _, id := range cat.IDs() {
		c.ByCategory[id] = 0
	}
	for _, r := range records {
		if _, ok := c.ByCategory[r.Category]; ok {
			c.ByCategory[r.Category]++
		}
	}
	return c
}

// Of returns the count shown for sel
func (c Counts) Of(sel Selector) int {
	if sel.IsAll() {
		return c.Total
	}
	return c.ByCategory[sel.Category()]
}

// Link derives the external link of r: base, category and id joined by "/".
// A trailing slash on base is dropped
func Link(base string, r Record) string {
	return strings.TrimSuffix(base, "/") + "/" + string(r.Category) + "/" + r.ID
}
