package schema

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FieldErrors maps a form field to its validation message. Validation
// failures always attach to the offending field, never get dropped.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// Add records a message for a field; the first message per field wins
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// OrNil returns the error set, or nil when empty
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchParams is the query-string filter/pagination state that round-trips
// through every search route
type SearchParams struct {
	Page    int
	Size    int
	Filters map[string]string
}

// reserved query keys that are not module filters
var reservedKeys = map[string]bool{"page": true, "size": true}

// ParseSearchParams decodes page/size plus module filters from a query
// string. Missing or out-of-range page/size fall back to defaults rather
// than failing: the search surface always renders.
func ParseSearchParams(values url.Values) SearchParams {
	p := SearchParams{
		Page:    DefaultPage,
		Size:    DefaultPageSize,
		Filters: map[string]string{},
	}

	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if raw := values.Get("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			if n > MaxPageSize {
				n = MaxPageSize
			}
			p.Size = n
		}
	}

	for key := range values {
		if reservedKeys[key] {
			continue
		}
		if v := values.Get(key); v != "" {
			p.Filters[key] = v
		}
	}

	return p
}

// Encode re-serializes the params so that a decoded route reproduces the
// original filter/pagination state exactly
func (p SearchParams) Encode() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("size", strconv.Itoa(p.Size))
	for key, val := range p.Filters {
		values.Set(key, val)
	}
	return values
}

// ParseDate parses an ISO date or datetime as used by the upstream API
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected ISO format", raw)
}
