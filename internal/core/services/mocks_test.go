package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// mockIndexSource is a mock implementation of driven.IndexSource.
type mockIndexSource struct {
	entries []domain.IndexEntry
	err     error
	calls   int
}

func (m *mockIndexSource) Entries(_ context.Context) ([]domain.IndexEntry, error) {
	m.calls++
	return m.entries, m.err
}

// mockRecorder is a mock implementation of driven.SearchRecorder.
type mockRecorder struct {
	mu       sync.Mutex
	searches []recordedSearch
	reloads  int
}

type recordedSearch struct {
	results int
	err     error
}

func (m *mockRecorder) ObserveSearch(_ time.Duration, results int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches = append(m.searches, recordedSearch{results: results, err: err})
}

func (m *mockRecorder) ObserveReload(_ int, _ error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloads++
}
