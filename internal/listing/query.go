package listing

import (
	"maps"
	"net/url"
	"sort"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Query is the full parameter set of one page request
type Query struct {
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Search   string            `json:"search,omitempty"`
	Sort     string            `json:"sort,omitempty"`
	Filters  map[string]string `json:"filters,omitempty"`
}

// Normalize clamps page and page size into range
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// WithPage returns a copy on page n; every other parameter is kept
func (q Query) WithPage(n int) Query {
	out := q.clone()
	out.Page = n
	return out.Normalize()
}

// WithSearch returns a copy with a new search term, back on page 1
func (q Query) WithSearch(s string) Query {
	out := q.clone()
	out.Search = s
	out.Page = 1
	return out.Normalize()
}

// WithSort returns a copy with a new sort key, back on page 1
func (q Query) WithSort(s string) Query {
	out := q.clone()
	out.Sort = s
	out.Page = 1
	return out.Normalize()
}

// WithFilter returns a copy with one filter set (or removed when value is empty), back on page 1
func (q Query) WithFilter(key, value string) Query {
	out := q.clone()
	if out.Filters == nil {
		out.Filters = make(map[string]string)
	}
	if value == "" {
		delete(out.Filters, key)
	} else {
		out.Filters[key] = value
	}
	out.Page = 1
	return out.Normalize()
}

// Values encodes the query as URL parameters
func (q Query) Values() url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}

	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.Set(k, q.Filters[k])
	}
	return v
}

// Equal compares two queries field by field
func (q Query) Equal(other Query) bool {
	a, b := q.Normalize(), other.Normalize()
	return a.Page == b.Page && a.PageSize == b.PageSize && a.Search == b.Search &&
		a.Sort == b.Sort && maps.Equal(a.Filters, b.Filters)
}

func (q Query) clone() Query {
	out := q
	if q.Filters != nil {
		out.Filters = maps.Clone(q.Filters)
	}
	return out
}
