// Package query holds the pure filter/sort/paginate pipeline applied to
// list endpoints. It operates on in-memory slices so every storage
// backend goes through the same code path.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPage is used when the page parameter is absent or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or invalid.
	DefaultLimit = 10
)

// Pagination describes one page of a filtered result set. Total counts
// matches before slicing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ParsePage parses a page query parameter, defaulting to 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// ParseLimit parses a limit query parameter, defaulting to 10. An
// explicit zero or negative value is kept: it means "no slicing".
func ParseLimit(raw string) int {
	if raw == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultLimit
	}
	return n
}

// Filter keeps the items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortNewestFirst stably sorts items by their creation time, newest
// first, and returns the same slice.
func SortNewestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
	return items
}

// Paginate slices items to the requested page. A limit of zero or less
// disables slicing and reports a single page. An offset past the end
// yields an empty page with the correct total.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	total := len(items)
	if limit <= 0 {
		return items, Pagination{Page: page, Limit: limit, Total: total, Pages: 1}
	}
	pages := (total + limit - 1) / limit
	offset := (page - 1) * limit
	if offset >= total {
		return []T{}, Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// MatchFold reports case-insensitive equality.
func MatchFold(value, want string) bool {
	return strings.EqualFold(value, want)
}

// ContainsFold reports whether any field contains search,
// case-insensitively. An empty search matches everything.
func ContainsFold(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
