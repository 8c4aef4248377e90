// Package manifest reads the dependency sections of a workspace package.json.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader implements ports.ManifestReader for package.json files.
type Reader struct{}

// NewReader creates a new manifest reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the manifest at path. Fields other than the dependency sections
// are ignored.
func (r *Reader) Read(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "cannot check dependencies"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidManifest, err), "cannot check dependencies"), "path", path)
	}

	return &m, nil
}
