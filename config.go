package precache

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultMaximumFileSize is the size cutoff, in bytes, applied when the
// configuration does not set one.
const DefaultMaximumFileSize = 2 * 1024 * 1024 // 2 MiB

// defaultGlobIgnores excludes dependency directories from asset discovery.
var defaultGlobIgnores = []string{"**/node_modules/**/*"}

// ManifestTransform rewrites a full entry collection.
// Transforms run after the built-in prefix rewrite and cache-bust stages,
// in declaration order; each one observes the previous transform's output.
type ManifestTransform func(entries []ManifestEntry) ([]ManifestEntry, error)

// TemplatedSource describes where the content of a templated URL comes
// from: either the files matched by an ordered list of glob patterns, or a
// literal string. Construct with Dependencies or Content; the zero value
// is invalid.
type TemplatedSource struct {
	patterns []string
	content  string
	literal  bool
}

// Dependencies declares a templated source whose revision is derived from
// the files matched by the given glob patterns, in the given order.
func Dependencies(patterns ...string) TemplatedSource {
	return TemplatedSource{patterns: patterns}
}

// Content declares a templated source whose revision is derived from a
// literal string.
func Content(s string) TemplatedSource {
	return TemplatedSource{content: s, literal: true}
}

// UnmarshalYAML decodes a scalar node as literal content and a sequence
// node as a list of dependency patterns.
func (ts *TemplatedSource) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*ts = Content(s)
		return nil
	case yaml.SequenceNode:
		var patterns []string
		if err := value.Decode(&patterns); err != nil {
			return err
		}
		*ts = Dependencies(patterns...)
		return nil
	default:
		return fmt.Errorf("templated url value must be a string or a list of glob patterns (line %d)", value.Line)
	}
}

// Config drives a manifest build. GlobDirectory and at least one glob
// pattern are required; everything else is optional.
type Config struct {
	// GlobDirectory is the directory asset discovery runs in. Entry URLs
	// are slash-separated paths relative to it.
	GlobDirectory string

	// GlobPatterns selects the files to precache. Pattern order is
	// load-bearing: when two patterns match the same URL, the entry
	// produced by the earlier pattern wins.
	GlobPatterns []string

	// GlobIgnores excludes matched files by pattern.
	// Defaults to a node_modules exclusion when nil.
	GlobIgnores []string

	// TemplatedURLs maps a logical URL to the source its revision is
	// derived from. A templated URL must not collide with a URL already
	// produced by GlobPatterns.
	TemplatedURLs map[string]TemplatedSource

	// ModifyURLPrefix rewrites entry URL prefixes after discovery,
	// at most one rewrite per entry.
	ModifyURLPrefix map[string]string

	// MaximumFileSizeToCacheInBytes drops entries above this size from the
	// manifest, reporting them as warnings. Defaults to 2 MiB when zero.
	MaximumFileSizeToCacheInBytes int64

	// DontCacheBustURLsMatching clears the revision of entries whose URL
	// matches, for assets that already carry versioning in their path.
	DontCacheBustURLsMatching *regexp.Regexp

	// ManifestTransforms are caller-supplied pipeline stages.
	ManifestTransforms []ManifestTransform

	// StaticFileGlobs is the predecessor tool's spelling of GlobPatterns.
	// Setting both is a configuration error.
	StaticFileGlobs []string

	// DynamicURLToDependencies is the predecessor tool's spelling of
	// TemplatedURLs. Setting both is a configuration error.
	DynamicURLToDependencies map[string]TemplatedSource
}

// validate checks the configuration exhaustively and canonicalizes legacy
// aliases and defaults. All violations are collected and reported together;
// no filesystem access happens here or before this returns nil.
func (c Config) validate() (Config, error) {
	var errs []error

	if c.GlobDirectory == "" {
		errs = append(errs, fmt.Errorf("globDirectory is required"))
	}

	// Canonicalize the legacy pattern spelling.
	if len(c.GlobPatterns) > 0 && len(c.StaticFileGlobs) > 0 {
		errs = append(errs, fmt.Errorf("globPatterns and staticFileGlobs are mutually exclusive; use globPatterns"))
	} else if len(c.GlobPatterns) == 0 {
		c.GlobPatterns = c.StaticFileGlobs
	}
	c.StaticFileGlobs = nil

	if len(c.GlobPatterns) == 0 {
		errs = append(errs, fmt.Errorf("at least one glob pattern is required"))
	}
	for _, pattern := range c.GlobPatterns {
		if err := validatePattern("globPatterns", pattern); err != nil {
			errs = append(errs, err)
		}
	}

	for _, pattern := range c.GlobIgnores {
		if err := validatePattern("globIgnores", pattern); err != nil {
			errs = append(errs, err)
		}
	}
	if c.GlobIgnores == nil {
		c.GlobIgnores = defaultGlobIgnores
	}

	// Canonicalize the legacy templated URL spelling.
	if len(c.TemplatedURLs) > 0 && len(c.DynamicURLToDependencies) > 0 {
		errs = append(errs, fmt.Errorf("templatedUrls and dynamicUrlToDependencies are mutually exclusive; use templatedUrls"))
	} else if len(c.TemplatedURLs) == 0 {
		c.TemplatedURLs = c.DynamicURLToDependencies
	}
	c.DynamicURLToDependencies = nil

	// Sort URLs so violations are reported in a stable order.
	urls := make([]string, 0, len(c.TemplatedURLs))
	for url := range c.TemplatedURLs {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	for _, url := range urls {
		src := c.TemplatedURLs[url]
		if !src.literal && len(src.patterns) == 0 {
			errs = append(errs, fmt.Errorf("templated url %q needs a string or a non-empty list of glob patterns", url))
			continue
		}
		for _, pattern := range src.patterns {
			if err := validatePattern(fmt.Sprintf("templated url %q", url), pattern); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if c.MaximumFileSizeToCacheInBytes < 0 {
		errs = append(errs, fmt.Errorf("maximumFileSizeToCacheInBytes must not be negative"))
	}
	if c.MaximumFileSizeToCacheInBytes == 0 {
		c.MaximumFileSizeToCacheInBytes = DefaultMaximumFileSize
	}

	if err := newValidationError(errs); err != nil {
		return Config{}, err
	}
	return c, nil
}

// validatePattern rejects empty and syntactically invalid glob patterns up
// front, so pattern errors surface before any I/O.
func validatePattern(field, pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%s: pattern must not be empty", field)
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%s: invalid glob pattern %q", field, pattern)
	}
	return nil
}
