package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

func testIndex() []domain.IndexEntry {
	return []domain.IndexEntry{
		{ID: "1", Name: "tokio", Category: domain.CategoryCrate, Brief: "Async runtime", Path: "crates/tokio.html"},
		{ID: "2", Name: "async-runtime", Aliases: []string{"rt"}, Category: domain.CategoryCrate, Path: "crates/rt.html"},
	}
}

func TestRank_EndToEndAlias(t *testing.T) {
	results := Rank(testIndex(), "rt")

	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].Entry.ID)
	assert.Equal(t, "rt", results[0].MatchedText)
	assert.Equal(t, domain.MatchExact, results[0].MatchType)
	assert.InDelta(t, 1.5, results[0].Score, 1e-9)
}

func TestRank_BoundarySubstringThroughHyphen(t *testing.T) {
	results := Rank(testIndex(), "run")

	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].Entry.ID)
	assert.Equal(t, domain.MatchSubstring, results[0].MatchType)
	assert.Empty(t, results[0].MatchedText)
	assert.InDelta(t, 0.6*1.5, results[0].Score, 1e-9)
}

func TestRank_EmptyInputs(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		results := Rank(testIndex(), "")
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("whitespace query", func(t *testing.T) {
		assert.Empty(t, Rank(testIndex(), "   \t"))
	})

	t.Run("nil index", func(t *testing.T) {
		results := Rank(nil, "anything")
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("empty index", func(t *testing.T) {
		assert.Empty(t, Rank([]domain.IndexEntry{}, "anything"))
	})
}

func TestRank_TrimsQuery(t *testing.T) {
	assert.Equal(t, Rank(testIndex(), "rt"), Rank(testIndex(), "  rt  "))
}

func TestRank_NameWinsTieWithAlias(t *testing.T) {
	index := []domain.IndexEntry{
		{ID: "1", Name: "serde", Aliases: []string{"serde"}, Category: domain.CategoryCrate},
	}

	results := Rank(index, "serde")

	require.Len(t, results, 1)
	assert.Empty(t, results[0].MatchedText)
	assert.Equal(t, domain.MatchExact, results[0].MatchType)
}

func TestRank_EarlierAliasWinsTie(t *testing.T) {
	index := []domain.IndexEntry{
		{ID: "1", Name: "serde_json", Aliases: []string{"", "jsonx", "jsony"}, Category: domain.CategoryCrate},
	}

	results := Rank(index, "json")

	require.Len(t, results, 1)
	assert.Equal(t, "jsonx", results[0].MatchedText)
	assert.Equal(t, domain.MatchPrefix, results[0].MatchType)
}

func TestRank_StrongerAliasBeatsName(t *testing.T) {
	index := []domain.IndexEntry{
		{ID: "1", Name: "regex", Aliases: []string{"regular expressions", "re"}, Category: domain.CategoryCrate},
	}

	results := Rank(index, "re")

	require.Len(t, results, 1)
	assert.Equal(t, "re", results[0].MatchedText)
	assert.Equal(t, domain.MatchExact, results[0].MatchType)
}

func TestRank_AliasesMatchedIndependently(t *testing.T) {
	// "web server" spread across two aliases must not produce a substring hit.
	index := []domain.IndexEntry{
		{ID: "1", Name: "axum", Aliases: []string{"web", "server"}, Category: "other"},
	}

	results := Rank(index, "web server")

	require.Len(t, results, 0)
}

func TestRank_CategoryWeight(t *testing.T) {
	index := []domain.IndexEntry{
		{ID: "other", Name: "serde", Category: "other"},
		{ID: "std", Name: "serde", Category: domain.CategoryStd},
		{ID: "book", Name: "serde", Category: domain.CategoryBook},
		{ID: "crate", Name: "serde", Category: domain.CategoryCrate},
	}

	results := Rank(index, "serde")

	require.Len(t, results, 4)
	assert.Equal(t, []string{"crate", "book", "std", "other"}, resultIDs(results))
	assert.InDelta(t, 1.5, results[0].Score, 1e-9)
	assert.InDelta(t, 1.3, results[1].Score, 1e-9)
	assert.InDelta(t, 1.1, results[2].Score, 1e-9)
	assert.InDelta(t, 1.0, results[3].Score, 1e-9)
}

func TestRank_MissingCategoryIsNeutral(t *testing.T) {
	results := Rank([]domain.IndexEntry{{ID: "1", Name: "serde"}}, "serde")

	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestRank_DeduplicatesByID(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		index := []domain.IndexEntry{
			{ID: "1", Name: "tokio", Category: domain.CategoryBook},
			{ID: "1", Name: "tokio", Category: domain.CategoryCrate},
		}

		results := Rank(index, "tokio")

		require.Len(t, results, 1)
		assert.Equal(t, domain.CategoryBook, results[0].Entry.Category)
	})

	t.Run("non-matching duplicate does not shadow a match", func(t *testing.T) {
		index := []domain.IndexEntry{
			{ID: "1", Name: "serde", Category: domain.CategoryCrate},
			{ID: "1", Name: "tokio", Category: domain.CategoryBook},
		}

		results := Rank(index, "tokio")

		require.Len(t, results, 1)
		assert.Equal(t, domain.CategoryBook, results[0].Entry.Category)
	})
}

func TestRank_StableForTies(t *testing.T) {
	index := []domain.IndexEntry{
		{ID: "c", Name: "hash-c", Category: domain.CategoryStd},
		{ID: "a", Name: "hash-a", Category: domain.CategoryStd},
		{ID: "b", Name: "hash-b", Category: domain.CategoryStd},
	}

	results := Rank(index, "hash")

	assert.Equal(t, []string{"c", "a", "b"}, resultIDs(results))
}

func TestRank_TruncatesToMaxResults(t *testing.T) {
	index := make([]domain.IndexEntry, 30)
	for i := range index {
		index[i] = domain.IndexEntry{ID: fmt.Sprint(i), Name: fmt.Sprintf("item-%d", i), Category: domain.CategoryCrate}
	}

	results := Rank(index, "item")

	require.Len(t, results, domain.MaxResults)
	assert.Equal(t, "0", results[0].Entry.ID)
	assert.Equal(t, "19", results[domain.MaxResults-1].Entry.ID)
}

func TestRank_OrderedAndUnique(t *testing.T) {
	var index []domain.IndexEntry
	cats := []domain.Category{domain.CategoryCrate, domain.CategoryBook, domain.CategoryStd, "misc"}
	names := []string{"string", "str", "to_string", "String::new", "strong", "sort", "stream-ext", "s t r"}
	for i := 0; i < 40; i++ {
		index = append(index, domain.IndexEntry{
			ID:       fmt.Sprint(i % 25),
			Name:     names[i%len(names)],
			Category: cats[i%len(cats)],
		})
	}

	results := Rank(index, "str")

	assert.LessOrEqual(t, len(results), domain.MaxResults)
	seen := make(map[string]bool)
	for i, r := range results {
		assert.False(t, seen[r.Entry.ID], "duplicate id %s", r.Entry.ID)
		seen[r.Entry.ID] = true
		assert.GreaterOrEqual(t, r.Score, domain.MinScore)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
		}
	}
}

func TestRank_DoesNotMutateIndex(t *testing.T) {
	index := testIndex()
	before := testIndex()

	_ = Rank(index, "rt")

	assert.Equal(t, before, index)
}

func TestRank_ConcurrentCallsAgree(t *testing.T) {
	index := testIndex()
	want := Rank(index, "rt")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Rank(index, "rt"))
		}()
	}
	wg.Wait()
}

func resultIDs(results []domain.RankedResult) []string {
	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].Entry.ID
	}
	return ids
}
