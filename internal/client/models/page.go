package models

// PageMeta describes one page window of a listed collection.
type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// TotalPages is never 0: an empty collection still has one (empty) page.
func (m PageMeta) TotalPages() int {
	if m.PageSize <= 0 {
		return 1
	}
	n := (m.Total + m.PageSize - 1) / m.PageSize
	if n < 1 {
		return 1
	}
	return n
}

// Page is the uniform list result every adapter returns, regardless of
// whether the server or the client did the paging.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// ListParams carries search/page/pageSize from a view to an adapter.
// Page is 1-indexed.
type ListParams struct {
	Search   string
	Page     int
	PageSize int
}

// NewListParams builds ListParams with sane defaults (page=1, pageSize=10).
// The page size is capped at 100 to prevent runaway fetches.
func NewListParams(search string, page, pageSize int) ListParams {
	p := ListParams{Search: search, Page: 1, PageSize: 10}
	if page >= 1 {
		p.Page = page
	}
	if pageSize >= 1 {
		p.PageSize = pageSize
		if p.PageSize > 100 {
			p.PageSize = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
