package navotar

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Pagination is the normalized list metadata. Depending on the endpoint
// generation the upstream reports it either in an X-Pagination response
// header or folded into the response envelope; both normalize to this.
type Pagination struct {
	CurrentPage int32 `json:"currentPage"`
	PageSize    int32 `json:"pageSize"`
	TotalCount  int32 `json:"totalCount"`
	TotalPages  int32 `json:"totalPages"`
}

// headerPagination mirrors the X-Pagination header payload
type headerPagination struct {
	CurrentPage int32 `json:"currentPage"`
	PageSize    int32 `json:"pageSize"`
	TotalCount  int32 `json:"totalCount"`
	TotalPages  int32 `json:"totalPages"`
}

// envelopePagination mirrors the newer in-body pagination fields
type envelopePagination struct {
	Page         int32 `json:"page"`
	PageSize     int32 `json:"pageSize"`
	TotalPages   int32 `json:"totalPages"`
	TotalRecords int32 `json:"totalRecords"`
}

func (p envelopePagination) normalize() Pagination {
	return Pagination{
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalRecords,
		TotalPages:  p.TotalPages,
	}
}

// parsePaginationHeader reads the X-Pagination header; a missing header
// yields the zero value, a malformed one is an error (reject, not coerce).
func parsePaginationHeader(resp *http.Response) (Pagination, error) {
	raw := resp.Header.Get("X-Pagination")
	if raw == "" {
		return Pagination{}, nil
	}
	var h headerPagination
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return Pagination{}, fmt.Errorf("malformed X-Pagination header: %w", err)
	}
	return Pagination(h), nil
}
