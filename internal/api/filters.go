package api

import (
	"net/url"
	"strconv"
)

// ListFilters mirrors the query contract of the backend list endpoints.
// Zero values are omitted from the query string: an empty search sends no
// search param at all, and sort_direction is only meaningful with sort_by.
type ListFilters struct {
	Page          int
	Search        string
	SortBy        string
	SortDirection string // "asc" or "desc"
	Scope         url.Values // extra entity-scoping params, e.g. company_id
}

// Values translates the filters into query parameters
func (f ListFilters) Values() url.Values {
	v := url.Values{}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.SortBy != "" {
		v.Set("sort_by", f.SortBy)
		if f.SortDirection != "" {
			v.Set("sort_direction", f.SortDirection)
		}
	}
	for key, vals := range f.Scope {
		for _, val := range vals {
			v.Add(key, val)
		}
	}
	return v
}
