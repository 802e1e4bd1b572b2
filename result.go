package precache

import (
	"fmt"
)

// BuildResult is the outcome of a successful manifest build.
type BuildResult struct {
	// Entries is the final manifest, in pipeline output order.
	Entries []ManifestEntry

	// Count is the number of entries in the manifest.
	Count int

	// Size is the total on-disk size of the entries, in bytes.
	Size int64

	// Warnings lists assets excluded for exceeding the size cutoff.
	Warnings []SizeWarning
}

// SizeWarning reports an asset excluded from the manifest because it
// exceeds the configured size cutoff. It is a diagnostic, not an error:
// the build still succeeds without the asset.
type SizeWarning struct {
	URL     string
	Size    int64
	MaxSize int64
}

// String returns a human-readable description of the warning.
func (w SizeWarning) String() string {
	return fmt.Sprintf("%s is %d bytes, above the %d byte limit; skipped", w.URL, w.Size, w.MaxSize)
}
