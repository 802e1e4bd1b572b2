package precache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// fileDetail is the intermediate record produced for each matched file.
// It is consumed by the assembler during deduplication and never persisted.
type fileDetail struct {
	url  string
	hash string
	size int64
}

// resolveFiles returns one detail per file under dir matching pattern,
// excluding files matched by any ignore pattern. Matched URLs are sorted,
// so output order is stable across runs and filesystems.
func (b *Builder) resolveFiles(dir, pattern string, ignores []string) ([]fileDetail, error) {
	exists, err := afero.DirExists(b.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("glob directory %s: %w", dir, err)
	}
	if !exists {
		return nil, fmt.Errorf("glob directory %s does not exist", dir)
	}

	var urls []string
	err = afero.Walk(b.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		url := filepath.ToSlash(rel)

		matched, err := doublestar.Match(pattern, url)
		if err != nil {
			return fmt.Errorf("glob %s: %w", pattern, err)
		}
		if !matched {
			return nil
		}

		ignored, err := matchesAny(ignores, url)
		if err != nil {
			return err
		}
		if ignored {
			return nil
		}

		urls = append(urls, url)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	// Sort for deterministic ordering
	sort.Strings(urls)

	details := make([]fileDetail, 0, len(urls))
	for _, url := range urls {
		detail, err := b.resolveFile(dir, url)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// resolveFile hashes one file and records its size.
func (b *Builder) resolveFile(dir, url string) (fileDetail, error) {
	path := filepath.Join(dir, filepath.FromSlash(url))

	info, err := b.fs.Stat(path)
	if err != nil {
		return fileDetail{}, fmt.Errorf("stat %s: %w", path, err)
	}

	file, err := b.fs.Open(path)
	if err != nil {
		return fileDetail{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	h := b.newHash()
	if err := hashReader(file, h); err != nil {
		return fileDetail{}, fmt.Errorf("hash %s: %w", path, err)
	}

	return fileDetail{url: url, hash: revision(h), size: info.Size()}, nil
}

// matchesAny reports whether url matches at least one of the patterns.
func matchesAny(patterns []string, url string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, url)
		if err != nil {
			return false, fmt.Errorf("ignore %s: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
