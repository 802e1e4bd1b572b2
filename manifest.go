package precache

import (
	"fmt"
	"sort"
)

// ManifestEntry instructs a caching layer what to fetch and under what
// version token. Entries whose URL already embeds versioning carry no
// revision; entries without an on-disk footprint carry no size.
type ManifestEntry struct {
	URL      string `json:"url"`
	Revision string `json:"revision,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Build computes the precache manifest described by config.
//
// The configuration is validated exhaustively before any filesystem access;
// a validation failure aborts the build with no partial result. Glob
// patterns are resolved in declaration order with first-writer-wins
// deduplication by URL, templated URLs are resolved afterwards, and the
// accumulated entries run through the filter/transform pipeline.
func (b *Builder) Build(config Config) (*BuildResult, error) {
	config, err := config.validate()
	if err != nil {
		return nil, err
	}

	var entries []ManifestEntry
	seen := make(map[string]bool)

	for _, pattern := range config.GlobPatterns {
		details, err := b.resolveFiles(config.GlobDirectory, pattern, config.GlobIgnores)
		if err != nil {
			return nil, err
		}
		for _, detail := range details {
			// First writer wins across patterns.
			if seen[detail.url] {
				continue
			}
			seen[detail.url] = true
			entries = append(entries, ManifestEntry{
				URL:      detail.url,
				Revision: detail.hash,
				Size:     detail.size,
			})
		}
	}

	// Sort templated URLs for deterministic ordering
	urls := make([]string, 0, len(config.TemplatedURLs))
	for url := range config.TemplatedURLs {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	for _, url := range urls {
		if seen[url] {
			return nil, fmt.Errorf("%w: templated url %q is already provided by a glob pattern", ErrURLCollision, url)
		}

		src := config.TemplatedURLs[url]
		var entry ManifestEntry
		if src.literal {
			entry = b.resolveString(url, src.content)
		} else {
			entry, err = b.resolveComposite(config.GlobDirectory, url, src.patterns, config.GlobIgnores)
			if err != nil {
				return nil, err
			}
		}

		seen[url] = true
		entries = append(entries, entry)
	}

	return applyTransforms(entries, config)
}
