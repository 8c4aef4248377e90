package ports

import "github.com/cpavlidis/nx-monorepo/internal/core/domain"

// ManifestReader defines the interface for reading the workspace dependency manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path.
	// Returns domain.ErrManifestNotFound if the file does not exist.
	Read(path string) (*domain.Manifest, error)
}
