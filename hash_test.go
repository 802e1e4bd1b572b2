package precache

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// TestHashReader checks that hashing through the buffered reader path
// produces the same digest as hashing the content directly.
func TestHashReader(t *testing.T) {
	memFs := afero.NewMemMapFs()

	testCases := []struct {
		name    string
		path    string
		content []byte
	}{
		{
			name:    "Normal file",
			path:    "normal.txt",
			content: []byte("test content"),
		},
		{
			name:    "Empty file",
			path:    "empty.txt",
			content: []byte{},
		},
		{
			name:    "Larger than one buffer",
			path:    "large.bin",
			content: bytes.Repeat([]byte("0123456789abcdef"), 4096),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := afero.WriteFile(memFs, tc.path, tc.content, 0o644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			file, err := memFs.Open(tc.path)
			if err != nil {
				t.Fatalf("Failed to open file: %v", err)
			}
			defer file.Close()

			h1 := xxhash.New()
			if err := hashReader(file, h1); err != nil {
				t.Errorf("hashReader() error = %v", err)
				return
			}

			h2 := xxhash.New()
			h2.Write(tc.content)

			if !bytes.Equal(h1.Sum(nil), h2.Sum(nil)) {
				t.Errorf("hashReader() produced different hash than direct hashing")
			}
		})
	}
}

// TestRevisionDeterminism checks that the same content always yields the
// same revision token, and different content a different one.
func TestRevisionDeterminism(t *testing.T) {
	b := NewBuilder()

	token := func(content string) string {
		h := b.newHash()
		h.Write([]byte(content))
		return revision(h)
	}

	if token("alpha") != token("alpha") {
		t.Errorf("Identical content produced different revisions")
	}
	if token("alpha") == token("beta") {
		t.Errorf("Different content produced the same revision")
	}
	if token("alpha") == "" {
		t.Errorf("Revision token is empty")
	}
}
