package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexSource = (*IndexStore)(nil)

// IndexStore is an in-memory driven.IndexSource. Each Replace installs a new
// snapshot; slices already handed out by Entries are never modified.
type IndexStore struct {
	mu      sync.RWMutex
	entries []domain.IndexEntry
}

// NewIndexStore creates a store holding a copy of entries.
func NewIndexStore(entries []domain.IndexEntry) *IndexStore {
	s := &IndexStore{}
	s.Replace(entries)
	return s
}

// Entries returns the current snapshot.
func (s *IndexStore) Entries(_ context.Context) ([]domain.IndexEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries, nil
}

// Replace swaps in a copy of entries as the new snapshot.
func (s *IndexStore) Replace(entries []domain.IndexEntry) {
	snapshot := make([]domain.IndexEntry, len(entries))
	copy(snapshot, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = snapshot
}

// Len returns the number of entries in the current snapshot.
func (s *IndexStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
