package repository

import "context"

// RecentItemRepository persists per-category most-recently-used lists.
// Keys are the values of entity.Category.RecentKey.
type RecentItemRepository interface {
	// LoadList returns the stored list for key, most recent first.
	// A missing list is returned as an empty slice, not an error.
	LoadList(ctx context.Context, key string) ([]string, error)

	// SaveList replaces the stored list for key.
	SaveList(ctx context.Context, key string, items []string) error
}
