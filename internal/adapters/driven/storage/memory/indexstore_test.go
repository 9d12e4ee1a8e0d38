package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

func TestIndexStore_Entries(t *testing.T) {
	entries := []domain.IndexEntry{
		{ID: "1", Name: "tokio", Category: domain.CategoryCrate},
		{ID: "2", Name: "serde", Category: domain.CategoryCrate},
	}
	store := NewIndexStore(entries)

	got, err := store.Entries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.Equal(t, 2, store.Len())
}

func TestIndexStore_CopiesInput(t *testing.T) {
	entries := []domain.IndexEntry{{ID: "1", Name: "tokio"}}
	store := NewIndexStore(entries)

	entries[0].Name = "changed"

	got, err := store.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tokio", got[0].Name)
}

func TestIndexStore_Replace(t *testing.T) {
	store := NewIndexStore(nil)
	assert.Equal(t, 0, store.Len())

	before, err := store.Entries(context.Background())
	require.NoError(t, err)

	store.Replace([]domain.IndexEntry{{ID: "a"}, {ID: "b"}})

	after, err := store.Entries(context.Background())
	require.NoError(t, err)
	assert.Len(t, before, 0)
	assert.Len(t, after, 2)
}

func TestIndexStore_ConcurrentAccess(t *testing.T) {
	store := NewIndexStore([]domain.IndexEntry{{ID: "1"}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Entries(context.Background())
		}()
		go func() {
			defer wg.Done()
			store.Replace([]domain.IndexEntry{{ID: "2"}})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
}
