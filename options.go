package precache

import (
	"github.com/spf13/afero"
)

// WithFs sets a custom filesystem for the builder.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	builder := precache.NewBuilder(precache.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) Option {
	return func(b *Builder) {
		b.fs = fs
	}
}

// WithHashFunc sets a custom hash function for the builder.
// The default is xxHash64, which provides excellent performance.
//
// Note: Changing the hash function changes every revision in the manifest,
// so a caching layer consuming the output will refetch all assets once.
func WithHashFunc(hashFunc HashFunc) Option {
	return func(b *Builder) {
		b.hashFunc = hashFunc
	}
}
