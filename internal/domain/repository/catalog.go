package repository

import (
	"context"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// CatalogRepository defines operations over registered vehicles, locations
// and drivers.
type CatalogRepository interface {
	// Search returns items of category whose value or label contains query
	// (case-insensitive), ordered by position then value. CategoryGeneral
	// searches every category.
	Search(ctx context.Context, category entity.Category, query string, limit int) ([]*entity.CatalogItem, error)

	// Favorites returns the favorite items of category in display order.
	Favorites(ctx context.Context, category entity.Category) ([]*entity.CatalogItem, error)

	// Save creates or updates an item, keyed by (category, value).
	Save(ctx context.Context, item *entity.CatalogItem) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id entity.CatalogItemID) error
}
