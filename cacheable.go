package precache

import (
	"errors"
	"net/http"
)

// CacheableResponse decides whether an HTTP response qualifies for caching,
// based on its status code and headers. The configuration is captured at
// construction and never changes, so a single predicate is safe for
// concurrent use by any number of callers.
type CacheableResponse struct {
	statuses map[int]bool
	headers  map[string]string
}

// NewCacheableResponse builds a predicate from a set of allowed status
// codes and a set of required header values. At least one of the two must
// be provided; an empty predicate would admit everything, which is never
// what a caller means.
func NewCacheableResponse(statuses []int, headers map[string]string) (*CacheableResponse, error) {
	if len(statuses) == 0 && len(headers) == 0 {
		return nil, errors.New("cacheable response predicate needs at least one status or header condition")
	}

	cr := &CacheableResponse{}
	if len(statuses) > 0 {
		cr.statuses = make(map[int]bool, len(statuses))
		for _, status := range statuses {
			cr.statuses[status] = true
		}
	}
	if len(headers) > 0 {
		cr.headers = make(map[string]string, len(headers))
		for name, value := range headers {
			cr.headers[name] = value
		}
	}
	return cr, nil
}

// IsCacheable reports whether resp passes the configured conditions.
// An unconfigured dimension is satisfied by default; configured dimensions
// combine with AND. Within the header dimension a single configured header
// carrying the expected value suffices.
func (cr *CacheableResponse) IsCacheable(resp *http.Response) (bool, error) {
	if resp == nil {
		return false, ErrNilResponse
	}

	if cr.statuses != nil && !cr.statuses[resp.StatusCode] {
		return false, nil
	}

	if cr.headers != nil {
		matched := false
		for name, want := range cr.headers {
			if resp.Header.Get(name) == want {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}

	return true, nil
}
