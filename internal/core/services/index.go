package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
	"github.com/custodia-labs/topicsearch/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService provides lookups and quality reports over an index source.
type IndexService struct {
	source driven.IndexSource
}

// NewIndexService creates a new index service.
func NewIndexService(source driven.IndexSource) *IndexService {
	return &IndexService{source: source}
}

// Get returns the first entry with the given id, matching the
// first-seen-wins rule search applies to duplicates.
func (s *IndexService) Get(ctx context.Context, id string) (*domain.IndexEntry, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].ID == id {
			entry := entries[i]
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
}

// Stats summarises the current index snapshot.
func (s *IndexService) Stats(ctx context.Context) (*domain.IndexStats, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.IndexStats{
		Entries:    len(entries),
		ByCategory: make(map[domain.Category]int),
	}

	counts := make(map[string]int, len(entries))
	for i := range entries {
		e := &entries[i]
		stats.ByCategory[e.Category]++
		if e.HasAliases() {
			stats.WithAliases++
		}
		counts[e.ID]++
		if counts[e.ID] == 2 {
			stats.DuplicateIDs = append(stats.DuplicateIDs, e.ID)
		}
	}

	if len(stats.DuplicateIDs) > 0 {
		logger.Warn("Index has %d duplicate ids", len(stats.DuplicateIDs))
	}
	return stats, nil
}

func (s *IndexService) entries(ctx context.Context) ([]domain.IndexEntry, error) {
	if s.source == nil {
		return nil, domain.ErrIndexUnavailable
	}
	entries, err := s.source.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	return entries, nil
}
