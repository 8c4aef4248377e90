// Package cas implements the patch journal as a flat JSON file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.PatchJournal  = (*Store)(nil)
	_ ports.JournalOpener = Opener{}
)

// Store implements ports.PatchJournal using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.PatchRecord
}

// NewStore creates a new journal backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.PatchRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read patch journal"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal patch journal"), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal patch journal")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for patch journal")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write patch journal")
	}

	return nil
}

// Get retrieves the record for a file path.
func (s *Store) Get(path string) (*domain.PatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[filepath.Clean(path)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record and flushes the journal to disk.
func (s *Store) Put(record domain.PatchRecord) error {
	record.Path = filepath.Clean(record.Path)

	s.mu.Lock()
	s.cache[record.Path] = record
	s.mu.Unlock()

	return s.save()
}

// Opener implements ports.JournalOpener.
type Opener struct{}

// Open loads the journal at path.
func (Opener) Open(path string) (ports.PatchJournal, error) {
	return NewStore(path)
}
