// Package listing implements the console's client-side list controls.
// Collections are fetched whole, then searched, status-filtered, and paged
// in memory.
package listing

import (
	"healthapp-admin/internal/pkg/constvars"
	"strings"
)

// Filter keeps items whose searchable fields contain the search term
// (case-insensitive) and whose status matches. Empty search and an empty
// or ALL status keep everything.
func Filter[T any](items []T, search, status string, fields func(T) []string, statusOf func(T) string) []T {
	search = strings.ToLower(strings.TrimSpace(search))
	filterByStatus := status != "" && status != constvars.StatusFilterAll && statusOf != nil

	out := make([]T, 0, len(items))
	for _, item := range items {
		if filterByStatus && statusOf(item) != status {
			continue
		}
		if search != "" && !matches(fields(item), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(fields []string, search string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Paginate slices one page out of the filtered items. Pages are 1-based;
// out-of-range pages clamp to the nearest valid page, and the clamped
// page is returned so views report the page actually served.
func Paginate[T any](items []T, page, perPage int) ([]T, int, int) {
	if perPage <= 0 {
		perPage = constvars.ItemsPerPage
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

// Window picks the page numbers to offer around the current page, at most
// PageWindowSize of them, pinned to the ends of the range.
func Window(current, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	var start, end int
	switch {
	case totalPages <= constvars.PageWindowSize:
		start, end = 1, totalPages
	case current <= 3:
		start, end = 1, constvars.PageWindowSize
	case current >= totalPages-2:
		start, end = totalPages-constvars.PageWindowSize+1, totalPages
	default:
		start, end = current-2, current+2
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// State tracks the previous search and status so the page resets to 1
// whenever either control changes.
type State struct {
	Search string
	Status string
	Page   int
}

// Apply folds the incoming controls into the state and returns the
// effective page.
func (s *State) Apply(search, status string, page int) int {
	if search != s.Search || status != s.Status {
		page = 1
	}
	if page < 1 {
		page = 1
	}
	s.Search = search
	s.Status = status
	s.Page = page
	return page
}
