package driving

import (
	"context"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// IndexService exposes read access to the loaded index.
type IndexService interface {
	// Get returns the first entry with the given id.
	// Returns domain.ErrNotFound if no entry matches.
	Get(ctx context.Context, id string) (*domain.IndexEntry, error)

	// Stats summarises the current index snapshot.
	Stats(ctx context.Context) (*domain.IndexStats, error)
}
