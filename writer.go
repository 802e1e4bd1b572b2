package precache

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteJSON writes the manifest entries as indented JSON to w.
func (r *BuildResult) WriteJSON(w io.Writer) error {
	data, err := r.marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// WriteFile writes the manifest entries as indented JSON to path on fs,
// creating parent directories as needed.
func (r *BuildResult) WriteFile(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}

	data, err := r.marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// marshal serializes the entries. An empty manifest serializes as an empty
// array, never null.
func (r *BuildResult) marshal() ([]byte, error) {
	entries := r.Entries
	if entries == nil {
		entries = []ManifestEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}
