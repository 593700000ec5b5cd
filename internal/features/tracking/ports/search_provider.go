package ports

import (
	"context"

	"tracking-viewer/internal/features/tracking/domain"
)

// SearchProvider reads the full list of tracking records from the worker.
type SearchProvider interface {
	// Search performs a single GET <worker>/search.
	Search(ctx context.Context) (*domain.SearchResult, error)
}
