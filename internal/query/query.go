// Package query holds the four user-controlled query dimensions and the
// pure derivation pipeline that turns the loaded directory plus a Query
// into the page of records to display.
package query

// SortDirection orders the filtered records by name.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// String returns a display label for the direction.
func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Query is the mutable query state. Page is 1-based and must be
// re-clamped against the derived page count after every mutation; use
// ClampPage with the View returned by Derive.
type Query struct {
	Search   string
	Company  string // empty means no company filter
	Sort     SortDirection
	Page     int
	PageSize int
}

// ClampPage forces page into [1, max(1, pageCount)]. A pageCount of
// zero (empty filtered set) still yields page 1 with an empty slice.
func ClampPage(page, pageCount int) int {
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}
