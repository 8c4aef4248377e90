package ports

import "github.com/cpavlidis/nx-monorepo/internal/core/domain"

// PatchJournal defines the interface for recording patched files.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PatchJournal interface {
	// Get retrieves the record for a given file path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.PatchRecord, error)

	// Put stores the record.
	Put(record domain.PatchRecord) error
}

// JournalOpener opens the patch journal stored at a given path.
type JournalOpener interface {
	Open(path string) (PatchJournal, error)
}
