// Package query derives filtered views of the inventory.
//
// Filter is a pure function over a snapshot of the store's items: it
// never mutates its input and identical inputs produce identical output,
// so the presentation layer can call it on every keystroke or selection
// change.
package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/tally/internal/inventory"
)

// Filter returns the order-preserved subsequence of items matching both
// predicates.
//
// An empty category means no category filter ("All"); an empty search
// string means no name filter. An item is included iff its category
// equals the filter (or the filter is empty) and its name contains the
// search text as a case-insensitive substring (or the search is empty).
//
// When both predicates are empty the input slice is returned unchanged.
func Filter(items []*inventory.Item, category inventory.Category, search string) []*inventory.Item {
	if category == "" && search == "" {
		return items
	}

	// A Caser is stateful, so build one per call rather than sharing.
	folder := cases.Fold()
	needle := folder.String(search)
	out := make([]*inventory.Item, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if search != "" && !strings.Contains(folder.String(item.Name), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}
