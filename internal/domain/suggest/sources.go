package suggest

import (
	"strconv"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// ResultID builds an id that is unique within one render cycle.
func ResultID(kind entity.Kind, category entity.Category, key string) string {
	return string(kind) + ":" + string(category) + ":" + key
}

// RecentResults turns a recent list into recent-kind results, keeping only
// items that contain query.
func RecentResults(category entity.Category, items []string, query string) []entity.SearchResult {
	out := make([]entity.SearchResult, 0, len(items))
	for i, item := range items {
		if item == "" || !Match(item, query) {
			continue
		}
		out = append(out, entity.SearchResult{
			ID:       ResultID(entity.KindRecent, category, strconv.Itoa(i)),
			Value:    item,
			Label:    item,
			Kind:     entity.KindRecent,
			Category: category,
		})
	}
	return out
}

// FavoriteResults turns plain favorite values into favorite-kind results.
func FavoriteResults(category entity.Category, values []string) []entity.SearchResult {
	out := make([]entity.SearchResult, 0, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		out = append(out, entity.SearchResult{
			ID:       ResultID(entity.KindFavorite, category, strconv.Itoa(i)),
			Value:    v,
			Label:    v,
			Kind:     entity.KindFavorite,
			Category: category,
		})
	}
	return out
}

// FilterFavorites keeps favorites whose value or label contains query and
// forces their kind to favorite. Order is preserved.
func FilterFavorites(favorites []entity.SearchResult, query string) []entity.SearchResult {
	out := make([]entity.SearchResult, 0, len(favorites))
	for _, f := range favorites {
		if !Match(f.Value, query) && !Match(f.Label, query) {
			continue
		}
		f.Kind = entity.KindFavorite
		out = append(out, f)
	}
	return out
}
