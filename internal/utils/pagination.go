package utils

import (
	"net/http"
	"strconv"

	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// ParsePageQuery reads the "page" and "page_size" query parameters from the
// request and returns a normalized [models.PageQuery]. Absent or malformed
// values fall back to the defaults (page 1, page size 10, capped at 100).
func ParsePageQuery(r *http.Request) models.PageQuery {
	q := models.PageQuery{}

	if v := r.URL.Query().Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			q.Page = page
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			q.PageSize = size
		}
	}

	return q.Normalize()
}

// NewPage assembles the pagination envelope for one page of results. Next and
// Previous are built from the request URL with only the "page" parameter
// replaced, so all active filters survive page navigation. They are nil at
// the corresponding edges of the result set.
func NewPage(r *http.Request, q models.PageQuery, count int64, results any) models.Page {
	totalPages := q.TotalPages(count)

	page := models.Page{
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: q.Page,
		Results:     results,
	}

	if q.Page < totalPages {
		page.Next = pageURL(r, q.Page+1)
	}
	if q.Page > 1 {
		page.Previous = pageURL(r, q.Page-1)
	}

	return page
}

func pageURL(r *http.Request, page int) *string {
	u := *r.URL
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()

	s := u.String()
	return &s
}
