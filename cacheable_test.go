package precache

import (
	"errors"
	"net/http"
	"testing"
)

func newResponse(status int, headers map[string]string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Header:     http.Header{},
	}
	for name, value := range headers {
		resp.Header.Set(name, value)
	}
	return resp
}

func TestNewCacheableResponseRequiresCondition(t *testing.T) {
	if _, err := NewCacheableResponse(nil, nil); err == nil {
		t.Fatalf("NewCacheableResponse() expected error for empty configuration")
	}
}

func TestIsCacheableStatuses(t *testing.T) {
	cr, err := NewCacheableResponse([]int{418}, nil)
	if err != nil {
		t.Fatalf("NewCacheableResponse() error = %v", err)
	}

	testCases := []struct {
		status int
		want   bool
	}{
		{418, true},
		{500, false},
		{200, false},
	}
	for _, tc := range testCases {
		got, err := cr.IsCacheable(newResponse(tc.status, nil))
		if err != nil {
			t.Fatalf("IsCacheable() error = %v", err)
		}
		if got != tc.want {
			t.Errorf("IsCacheable(status %d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestIsCacheableHeaders(t *testing.T) {
	cr, err := NewCacheableResponse(nil, map[string]string{"x-test": "true"})
	if err != nil {
		t.Fatalf("NewCacheableResponse() error = %v", err)
	}

	testCases := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{"Matching header", map[string]string{"x-test": "true"}, true},
		{"Wrong value", map[string]string{"x-test": "false"}, false},
		{"Missing header", nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cr.IsCacheable(newResponse(200, tc.headers))
			if err != nil {
				t.Fatalf("IsCacheable() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("IsCacheable() = %v, want %v", got, tc.want)
			}
		})
	}
}

// A multi-entry header configuration is satisfied by any single match.
func TestIsCacheableHeadersAnyMatch(t *testing.T) {
	cr, err := NewCacheableResponse(nil, map[string]string{
		"x-test":      "true",
		"x-cacheable": "yes",
	})
	if err != nil {
		t.Fatalf("NewCacheableResponse() error = %v", err)
	}

	got, err := cr.IsCacheable(newResponse(200, map[string]string{"x-cacheable": "yes"}))
	if err != nil {
		t.Fatalf("IsCacheable() error = %v", err)
	}
	if !got {
		t.Errorf("IsCacheable() = false, want true for a single matching header")
	}
}

// Configured statuses and headers are independent checks combined with AND.
func TestIsCacheableBothDimensions(t *testing.T) {
	cr, err := NewCacheableResponse([]int{418}, map[string]string{"x-test": "true"})
	if err != nil {
		t.Fatalf("NewCacheableResponse() error = %v", err)
	}

	testCases := []struct {
		name    string
		status  int
		headers map[string]string
		want    bool
	}{
		{"Status only", 418, nil, false},
		{"Header only", 500, map[string]string{"x-test": "true"}, false},
		{"Both", 418, map[string]string{"x-test": "true"}, true},
		{"Neither", 500, nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cr.IsCacheable(newResponse(tc.status, tc.headers))
			if err != nil {
				t.Fatalf("IsCacheable() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("IsCacheable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsCacheableNilResponse(t *testing.T) {
	cr, err := NewCacheableResponse([]int{200}, nil)
	if err != nil {
		t.Fatalf("NewCacheableResponse() error = %v", err)
	}

	_, err = cr.IsCacheable(nil)
	if !errors.Is(err, ErrNilResponse) {
		t.Errorf("IsCacheable(nil) error = %v, want ErrNilResponse", err)
	}
}
