package precache

import (
	"hash"

	"github.com/spf13/afero"
)

// HashFunc defines a function that creates a new hash.Hash instance.
type HashFunc func() hash.Hash

// Builder computes precache manifests.
// A Builder carries no per-build state and may be reused; given a stable
// filesystem snapshot, repeated builds produce identical manifests.
type Builder struct {
	fs       afero.Fs
	hashFunc HashFunc
}

// Option defines a function that configures a Builder.
type Option func(*Builder)

// NewBuilder creates a manifest builder.
// It uses the OS filesystem and the default hash function (xxHash) unless
// overridden with options.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		fs:       afero.NewOsFs(),
		hashFunc: defaultHashFunc,
	}

	// Apply options
	for _, option := range options {
		option(b)
	}

	return b
}

// newHash creates a new hash instance.
func (b *Builder) newHash() hash.Hash {
	return b.hashFunc()
}
