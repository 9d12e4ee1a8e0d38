package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topicsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/logger"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks the source index", func(t *testing.T) {
		service := NewSearchService(memory.NewIndexStore(testIndex()), nil)

		results, err := service.Search(ctx, "rt", domain.SearchOptions{})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "2", results[0].Entry.ID)
		assert.Equal(t, "rt", results[0].MatchedText)
	})

	t.Run("empty query returns no results without loading", func(t *testing.T) {
		source := &mockIndexSource{entries: testIndex()}
		service := NewSearchService(source, nil)

		results, err := service.Search(ctx, "   ", domain.SearchOptions{})

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
		assert.Equal(t, 0, source.calls)
	})

	t.Run("short query is ignored", func(t *testing.T) {
		source := &mockIndexSource{entries: testIndex()}
		service := NewSearchService(source, nil)

		results, err := service.Search(ctx, "t", domain.SearchOptions{MinQueryLength: 2})

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 0, source.calls)
	})

	t.Run("min query length counts runes", func(t *testing.T) {
		service := NewSearchService(memory.NewIndexStore([]domain.IndexEntry{
			{ID: "1", Name: "日本", Category: domain.CategoryBook},
		}), nil)

		results, err := service.Search(ctx, "日本", domain.SearchOptions{MinQueryLength: 2})

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("limit truncates", func(t *testing.T) {
		index := make([]domain.IndexEntry, 10)
		for i := range index {
			index[i] = domain.IndexEntry{ID: fmt.Sprint(i), Name: fmt.Sprintf("item %d", i)}
		}
		service := NewSearchService(memory.NewIndexStore(index), nil)

		results, err := service.Search(ctx, "item", domain.SearchOptions{Limit: 3})

		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("category filter applies before truncation", func(t *testing.T) {
		var index []domain.IndexEntry
		for i := 0; i < 25; i++ {
			index = append(index, domain.IndexEntry{ID: fmt.Sprintf("c%d", i), Name: "serde", Category: domain.CategoryCrate})
		}
		index = append(index, domain.IndexEntry{ID: "s1", Name: "serde", Category: domain.CategoryStd})
		service := NewSearchService(memory.NewIndexStore(index), nil)

		results, err := service.Search(ctx, "serde", domain.SearchOptions{
			Categories: []domain.Category{domain.CategoryStd},
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "s1", results[0].Entry.ID)
	})

	t.Run("source error is wrapped", func(t *testing.T) {
		boom := errors.New("disk on fire")
		service := NewSearchService(&mockIndexSource{err: boom}, nil)

		_, err := service.Search(ctx, "tokio", domain.SearchOptions{})

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "load index")
	})

	t.Run("nil source is unavailable", func(t *testing.T) {
		service := NewSearchService(nil, nil)

		_, err := service.Search(ctx, "tokio", domain.SearchOptions{})

		assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
	})
}

func TestSearchService_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	recorder := &mockRecorder{}
	service := NewSearchService(memory.NewIndexStore(testIndex()), recorder)

	_, err := service.Search(ctx, "rt", domain.SearchOptions{})
	require.NoError(t, err)
	_, err = service.Search(ctx, "", domain.SearchOptions{})
	require.NoError(t, err)

	require.Len(t, recorder.searches, 2)
	assert.Equal(t, 1, recorder.searches[0].results)
	assert.NoError(t, recorder.searches[0].err)
	assert.Equal(t, 0, recorder.searches[1].results)
}

func TestSearchService_RecordsFailures(t *testing.T) {
	recorder := &mockRecorder{}
	service := NewSearchService(&mockIndexSource{err: errors.New("nope")}, recorder)

	_, err := service.Search(context.Background(), "tokio", domain.SearchOptions{})
	require.Error(t, err)

	require.Len(t, recorder.searches, 1)
	assert.Error(t, recorder.searches[0].err)
}

func TestSearchService_LogsWhenVerbose(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	service := NewSearchService(memory.NewIndexStore(testIndex()), nil)
	_, err := service.Search(context.Background(), "rt", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "=== Search Execution ===")
	assert.Contains(t, buf.String(), `Query: "rt"`)
	assert.Contains(t, buf.String(), "Ranked results: 1")
}

func TestFilterByCategory(t *testing.T) {
	index := testIndex()
	index = append(index, domain.IndexEntry{ID: "3", Name: "iter", Category: domain.CategoryStd})

	filtered := filterByCategory(index, []domain.Category{domain.CategoryStd})

	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
	assert.Len(t, index, 3)
}
