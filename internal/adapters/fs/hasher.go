package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of file contents.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashContent returns the hex encoded XXHash of content.
func (h *Hasher) HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
