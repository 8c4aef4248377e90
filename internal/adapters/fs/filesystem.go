// Package fs provides the filesystem and content hashing adapters.
package fs

import (
	"os"
	"path/filepath"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the whole file as a string.
func (f *FileSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return string(data), nil
}

// WriteFile overwrites path with content, creating missing parent directories.
func (f *FileSystem) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	//nolint:gosec // Generated sources are meant to be world readable
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}
