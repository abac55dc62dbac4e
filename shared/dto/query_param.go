package dto

import (
	"net/http"
	"strconv"
	"strings"

	"hotel/shared/constant"
)

type QueryParams struct {
	Page   int    `json:"page"   validate:"omitempty"`
	Limit  int    `json:"limit"  validate:"omitempty"`
	Search string `json:"q"      validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
//
// With defaultRequest set, missing or invalid page and limit fall back to the package defaults,
// otherwise they stay zero and the listing is returned unpaginated.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

func (q QueryParams) Paginated() bool {
	return q.Limit > 0
}

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}

type ListResponse[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
