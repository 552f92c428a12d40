package pagination

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 10
	// MaxPerPage caps how many items any page can hold.
	MaxPerPage = 100
)

// Page is one window over an already-filtered slice. The admin panels page
// locally, so this slices in memory rather than cursoring a datastore.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PerPage    int
	TotalItems int
	TotalPages int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool {
	return p.PageNumber > 1
}

// NormalizePerPage enforces the configured default and maximum page sizes.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Paginate slices one page out of items. Page numbers are 1-based; numbers
// past the end return an empty page with the bounds intact.
func Paginate[T any](items []T, pageNumber, perPage int) Page[T] {
	perPage = NormalizePerPage(perPage)
	if pageNumber < 1 {
		pageNumber = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := (pageNumber - 1) * perPage
	if start > totalItems {
		start = totalItems
	}
	end := start + perPage
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: pageNumber,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
