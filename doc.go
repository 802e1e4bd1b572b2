// Package precache generates precache manifests at build time.
//
// A manifest is a deterministic, ordered list of (URL, revision) pairs telling a
// caching layer which assets to fetch and under what version token, so the layer
// can detect when a previously cached asset has changed without comparing full
// content.
//
// # Overview
//
// precache discovers assets with glob patterns, derives a revision for each one
// from its content (xxHash by default), merges in templated URLs whose revisions
// are computed from declared dependencies, and runs the accumulated entries
// through a filter/transform pipeline before returning the final manifest.
//
// # Key Features
//
//   - Content-Derived Revisions: fast hashing (xxHash by default) produces
//     stable version tokens across runs
//   - Glob Discovery: doublestar patterns with ignore lists, resolved in
//     declaration order with first-writer-wins deduplication
//   - Templated URLs: logical URLs versioned by multiple dependency files
//     (composite) or by a literal string
//   - Transform Pipeline: prefix rewriting, cache-bust exclusion, caller
//     transforms and a size cutoff with per-asset warnings
//   - Filesystem Abstraction: afero everywhere, so builds run unchanged
//     against in-memory filesystems in tests
//
// # Basic Usage
//
// Building a manifest:
//
//	builder := precache.NewBuilder()
//	result, err := builder.Build(precache.Config{
//	    GlobDirectory: "dist",
//	    GlobPatterns:  []string{"**/*.{js,css,html}"},
//	})
//	if err != nil {
//	    log.Fatalf("Build failed: %v", err)
//	}
//	fmt.Printf("%d entries, %d bytes\n", result.Count, result.Size)
//
// Templated URLs:
//
//	config := precache.Config{
//	    GlobDirectory: "dist",
//	    GlobPatterns:  []string{"**/*.js"},
//	    TemplatedURLs: map[string]precache.TemplatedSource{
//	        "/shell":   precache.Dependencies("shell.hbs", "partials/*.hbs"),
//	        "/offline": precache.Content("offline fallback v1"),
//	    },
//	}
//
// Writing the manifest:
//
//	if err := result.WriteFile(afero.NewOsFs(), "precache-manifest.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Cacheable-Response Predicate
//
// The predicate decides at runtime whether a response qualifies for caching:
//
//	cr, err := precache.NewCacheableResponse([]int{200}, map[string]string{"X-Cacheable": "true"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := cr.IsCacheable(resp)
//
// Both dimensions default to satisfied when not configured and combine with
// logical AND when both are set.
//
// # Determinism
//
// Given a stable filesystem snapshot, Build always produces the same manifest:
// matched files are ordered by URL, templated URLs by sorted key, and composite
// revisions hash dependency hashes in declaration order. Only content changes
// (or a changed dependency order) change a revision.
package precache
