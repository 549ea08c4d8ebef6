package models

// Pagination bounds applied to every list endpoint.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageQuery is the normalized form of the page/page_size query parameters.
type PageQuery struct {
	// Page is 1-based.
	Page int

	// PageSize is clamped to [1, MaxPageSize].
	PageSize int
}

// Normalize replaces out-of-range values with the defaults: page floors at 1,
// page size defaults to DefaultPageSize and caps at MaxPageSize.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset returns the row offset of the page's first record.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// TotalPages returns the page count for the given total, at least 1.
func (q PageQuery) TotalPages(count int64) int {
	if count <= 0 {
		return 1
	}
	pages := int((count + int64(q.PageSize) - 1) / int64(q.PageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}
