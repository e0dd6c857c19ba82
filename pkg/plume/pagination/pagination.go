// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import "strconv"

// PageSize is the number of items per page across all feeds.
// Keeping it identical everywhere keeps paging UX consistent.
const PageSize = 10

// Meta describes a page's position within the full result set.
type Meta struct {
	Page        int  `json:"page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate returns the requested page of items plus metadata.
// Out-of-range page numbers clamp to the nearest valid page instead of
// erroring: page < 1 becomes 1, page > last becomes the last page.
// An empty input produces a single empty page.
func Paginate[T any](items []T, page int) ([]T, Meta) {
	totalItems := len(items)
	totalPages := (totalItems + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return items[start:end], Meta{
		Page:        page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// ParsePage parses a page query parameter, defaulting to 1 on absent or
// malformed input. Range clamping is left to Paginate.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
