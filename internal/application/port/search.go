// Package port defines the interfaces the use cases and UI components
// depend on.
package port

import (
	"context"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// SearchProvider returns exact, favorite and search kind results for a
// free-text query within a category. An empty query yields an empty slice:
// recent and favorite augmentation happens in the caller.
type SearchProvider interface {
	Search(ctx context.Context, category entity.Category, query string) ([]entity.SearchResult, error)
}

// SearchFunc adapts a plain function to SearchProvider.
type SearchFunc func(ctx context.Context, category entity.Category, query string) ([]entity.SearchResult, error)

// Search implements SearchProvider.
func (f SearchFunc) Search(ctx context.Context, category entity.Category, query string) ([]entity.SearchResult, error) {
	return f(ctx, category, query)
}

// RecentItems is the recent-list view a search input needs.
// Implementations must never fail the caller: storage problems degrade to
// an empty list.
type RecentItems interface {
	Add(ctx context.Context, category entity.Category, item string)
	Get(ctx context.Context, category entity.Category) []string
}
