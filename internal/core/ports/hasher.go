package ports

// Hasher defines the interface for computing content digests.
type Hasher interface {
	// HashContent returns a stable digest of the given buffer.
	HashContent(content string) string
}
