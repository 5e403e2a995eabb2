// Package listing filters, searches, sorts and pages the admin tables.
package listing

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	MaxPageSize = 100
	SortNewest  = "newest"
	// All disables a select filter.
	All = "all"
)

// Query is what a table sends: free text, select filters by name and a sort
// key.
type Query struct {
	Search  string
	Filters map[string]string
	Sort    string
}

// Spec describes how one item type is listed.
type Spec[T any] struct {
	// Search returns the fields matched against Query.Search.
	Search func(T) []string
	// Filters are keyed by filter name; the func reports whether item
	// matches the selected value.
	Filters map[string]func(item T, value string) bool
	Sorts   map[string]func(a, b T) int
	// DefaultSort is used when Query.Sort is empty.
	DefaultSort string
}

// Apply returns a new slice. Unknown filter names are ignored and an unknown
// sort key keeps the input order.
func Apply[T any](items []T, spec Spec[T], q Query) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && spec.Search != nil && !matches(spec.Search(item), needle) {
			continue
		}
		if !passes(item, spec.Filters, q.Filters) {
			continue
		}
		out = append(out, item)
	}

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = spec.DefaultSort
	}
	if cmp, ok := spec.Sorts[sortKey]; ok {
		slices.SortStableFunc(out, cmp)
	}

	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func passes[T any](item T, filters map[string]func(T, string) bool, selected map[string]string) bool {
	for name, value := range selected {
		if value == "" || value == All {
			continue
		}
		filter, ok := filters[name]
		if !ok {
			continue
		}
		if !filter(item, value) {
			return false
		}
	}
	return true
}

// Page returns the 1-based page of items. pageSize <= 0 returns everything,
// larger sizes are capped at MaxPageSize.
func Page[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	pageSize = min(pageSize, MaxPageSize)
	page = max(page, 1)

	// Compared before multiplying so huge page numbers cannot overflow.
	if page-1 >= (len(items)+pageSize-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	return items[start:min(start+pageSize, len(items))]
}

// Collators keep internal buffers, so each goroutine borrows its own.
var collators = sync.Pool{
	New: func() any {
		return collate.New(language.English, collate.IgnoreCase, collate.Loose)
	},
}

// CompareText orders strings the way a person expects: case and accents are
// ignored before falling back to byte order.
func CompareText(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)

	if r := c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Desc reverses a comparator.
func Desc[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Equal is a filter that matches one string field exactly.
func Equal[T any](field func(T) string) func(T, string) bool {
	return func(item T, value string) bool {
		return field(item) == value
	}
}
