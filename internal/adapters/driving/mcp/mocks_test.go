package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.RankedResult
	err       error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.RankedResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	entries map[string]domain.IndexEntry
	stats   *domain.IndexStats
	err     error
}

func (m *mockIndexService) Get(_ context.Context, id string) (*domain.IndexEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

func (m *mockIndexService) Stats(_ context.Context) (*domain.IndexStats, error) {
	return m.stats, m.err
}
