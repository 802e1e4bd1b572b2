package precache

import (
	"fmt"
	"sort"
	"strings"
)

// applyTransforms runs the filter/transform pipeline: the built-in prefix
// rewrite and cache-bust stages, the caller-supplied transforms, then the
// size cutoff. Every stage operates on the full entry collection, so a
// later stage always observes the previous stage's complete output.
func applyTransforms(entries []ManifestEntry, config Config) (*BuildResult, error) {
	entries = rewritePrefixes(entries, config.ModifyURLPrefix)

	if config.DontCacheBustURLsMatching != nil {
		for i := range entries {
			if config.DontCacheBustURLsMatching.MatchString(entries[i].URL) {
				// The URL is already content-versioned; the entry stays,
				// the redundant revision goes.
				entries[i].Revision = ""
			}
		}
	}

	for i, transform := range config.ManifestTransforms {
		var err error
		entries, err = transform(entries)
		if err != nil {
			return nil, fmt.Errorf("manifest transform %d: %w", i, err)
		}
	}

	result := &BuildResult{}
	for _, entry := range entries {
		if entry.Size > config.MaximumFileSizeToCacheInBytes {
			result.Warnings = append(result.Warnings, SizeWarning{
				URL:     entry.URL,
				Size:    entry.Size,
				MaxSize: config.MaximumFileSizeToCacheInBytes,
			})
			continue
		}
		result.Entries = append(result.Entries, entry)
		result.Size += entry.Size
	}
	result.Count = len(result.Entries)

	return result, nil
}

// rewritePrefixes replaces at most one configured prefix per entry.
// Prefix keys are tried in sorted order so rewrites are deterministic.
func rewritePrefixes(entries []ManifestEntry, prefixes map[string]string) []ManifestEntry {
	if len(prefixes) == 0 {
		return entries
	}

	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i := range entries {
		for _, key := range keys {
			if strings.HasPrefix(entries[i].URL, key) {
				entries[i].URL = prefixes[key] + strings.TrimPrefix(entries[i].URL, key)
				break
			}
		}
	}
	return entries
}
