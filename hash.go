package precache

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Default size for the buffer used when hashing files
const defaultBufferSize = 32 * 1024 // 32KB

// bufferPool is a pool of byte slices used for file I/O during hashing
var bufferPool = sync.Pool{
	New: func() interface{} {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// hashReader hashes the content from a reader using the provided hash function.
func hashReader(content io.Reader, h hash.Hash) error {
	bufPtr := bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer bufferPool.Put(bufPtr)

	_, err := io.CopyBuffer(h, content, buffer)
	if err != nil {
		return fmt.Errorf("failed to copy content: %w", err)
	}
	return nil
}

// revision returns the hash state as the hex token stored in the manifest.
func revision(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}

// defaultHashFunc returns the default hash function (xxHash64).
func defaultHashFunc() hash.Hash {
	return xxhash.New()
}
