package tui

import (
	"context"
	"fmt"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	results []domain.RankedResult
	err     error
}

func (m *MockSearchService) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.RankedResult, error) {
	return m.results, m.err
}

// MockIndexService implements driving.IndexService for testing.
type MockIndexService struct {
	entries map[string]domain.IndexEntry
}

func (m *MockIndexService) Get(_ context.Context, id string) (*domain.IndexEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

func (m *MockIndexService) Stats(_ context.Context) (*domain.IndexStats, error) {
	return &domain.IndexStats{Entries: len(m.entries)}, nil
}
