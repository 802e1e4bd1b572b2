package precache

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrURLCollision is returned when a templated URL duplicates a URL
	// already discovered by a glob pattern.
	ErrURLCollision = errors.New("url collision")

	// ErrNoMatchingFiles is returned when a dependency pattern of a
	// templated URL matches no files.
	ErrNoMatchingFiles = errors.New("no matching files")

	// ErrNilResponse is returned when IsCacheable is called without a response.
	ErrNilResponse = errors.New("nil response")
)

// ValidationError represents one or more configuration errors detected
// before a build touches the filesystem.
type ValidationError struct {
	Errors []error
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	if len(ve.Errors) == 1 {
		return fmt.Sprintf("validation failed: %v", ve.Errors[0])
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("validation failed with %d errors:\n", len(ve.Errors)))
	for i, err := range ve.Errors {
		fmt.Fprintf(&buf, "  %d. %v\n", i+1, err)
	}
	return buf.String()
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
// This implements the multi-error unwrap interface introduced in Go 1.20.
func (ve *ValidationError) Unwrap() []error {
	return ve.Errors
}

// newValidationError creates a ValidationError from a slice of errors.
// Returns nil if the slice is empty.
func newValidationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
