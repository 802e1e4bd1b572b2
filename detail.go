package precache

import (
	"fmt"
)

// resolveComposite builds the entry for a templated URL whose content is
// derived from an ordered list of dependency patterns. The revision hashes
// the concatenation of each dependency's individual hash in declaration
// order, so reordering the declared patterns changes the revision while
// reordering unrelated files on disk does not. The size is the sum of the
// dependency sizes and only feeds the size cutoff.
func (b *Builder) resolveComposite(dir, url string, patterns, ignores []string) (ManifestEntry, error) {
	h := b.newHash()
	var size int64

	for _, pattern := range patterns {
		deps, err := b.resolveFiles(dir, pattern, ignores)
		if err != nil {
			return ManifestEntry{}, err
		}
		if len(deps) == 0 {
			return ManifestEntry{}, fmt.Errorf("%w: pattern %q of templated url %q", ErrNoMatchingFiles, pattern, url)
		}
		for _, dep := range deps {
			h.Write([]byte(dep.hash))
			size += dep.size
		}
	}

	return ManifestEntry{URL: url, Revision: revision(h), Size: size}, nil
}

// resolveString builds the entry for a templated URL backed by a literal
// string. The entry carries no size: there is no on-disk footprint, so the
// size cutoff never applies to it.
func (b *Builder) resolveString(url, content string) ManifestEntry {
	h := b.newHash()
	h.Write([]byte(content))
	return ManifestEntry{URL: url, Revision: revision(h)}
}
