package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
	"github.com/custodia-labs/topicsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks the entries of an index source against a query.
type SearchService struct {
	source   driven.IndexSource
	recorder driven.SearchRecorder
}

// NewSearchService creates a new search service.
// The recorder is optional (can be nil).
func NewSearchService(source driven.IndexSource, recorder driven.SearchRecorder) *SearchService {
	return &SearchService{
		source:   source,
		recorder: recorder,
	}
}

// Search ranks the current index against query.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (results []domain.RankedResult, err error) {
	start := time.Now()
	defer func() {
		if s.recorder != nil {
			s.recorder.ObserveSearch(time.Since(start), len(results), err)
		}
	}()

	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.RankedResult{}, nil
	}
	if n := utf8.RuneCountInString(query); n < opts.MinQueryLength {
		logger.Debug("Query shorter than %d characters, returning no results", opts.MinQueryLength)
		return []domain.RankedResult{}, nil
	}

	if s.source == nil {
		return nil, fmt.Errorf("search: %w", domain.ErrIndexUnavailable)
	}

	entries, err := s.source.Entries(ctx)
	if err != nil {
		logger.Warn("Index load failed: %v", err)
		return nil, fmt.Errorf("load index: %w", err)
	}
	logger.Debug("Index entries: %d", len(entries))

	if len(opts.Categories) > 0 {
		entries = filterByCategory(entries, opts.Categories)
		logger.Debug("After category filter %v: %d entries", opts.Categories, len(entries))
	}

	results = Rank(entries, query)
	logger.Debug("Ranked results: %d", len(results))

	if limit := opts.EffectiveLimit(); len(results) > limit {
		results = results[:limit]
		logger.Debug("Truncated to limit %d", limit)
	}

	return results, nil
}

// filterByCategory returns the entries whose category is in cats.
// The input slice is left untouched.
func filterByCategory(entries []domain.IndexEntry, cats []domain.Category) []domain.IndexEntry {
	allowed := make(map[domain.Category]struct{}, len(cats))
	for _, c := range cats {
		allowed[c] = struct{}{}
	}

	filtered := make([]domain.IndexEntry, 0, len(entries))
	for i := range entries {
		if _, ok := allowed[entries[i].Category]; ok {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}
