package driving

import (
	"context"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search ranks the current index against query.
	// An empty query yields an empty result, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RankedResult, error)
}
