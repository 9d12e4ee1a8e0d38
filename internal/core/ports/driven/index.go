package driven

import (
	"context"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// IndexSource delivers the index. How it is obtained (file, stdin, embedded)
// is up to the implementation; the returned slice must be fully loaded and
// must not be mutated by the source after it is returned.
type IndexSource interface {
	// Entries returns the current index snapshot.
	Entries(ctx context.Context) ([]domain.IndexEntry, error)
}
