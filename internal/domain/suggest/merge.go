package suggest

import (
	"github.com/bnema/tripbook/internal/domain/entity"
)

// DefaultMaxResults caps a rendered result list.
const DefaultMaxResults = 20

// bucketOrder is the fixed display order of result kinds.
var bucketOrder = []entity.Kind{
	entity.KindRecent,
	entity.KindExact,
	entity.KindFavorite,
	entity.KindSearch,
}

// Merge combines raw results from any number of sources into one ordered,
// de-duplicated list.
//
// Results are bucketed by Kind and emitted recent, exact, favorite, search.
// Source order is preserved inside a bucket. When the same Value appears more
// than once only the first occurrence survives, which by construction is the
// highest-precedence one. A dropped duplicate still lends its Label and
// Metadata keys to the survivor when the survivor lacks them, so a recent
// value keeps the entity ids its catalog entry carries. Results with an
// unknown kind are dropped.
func Merge(sources ...[]entity.SearchResult) []entity.SearchResult {
	buckets := make(map[entity.Kind][]entity.SearchResult, len(bucketOrder))
	total := 0
	for _, src := range sources {
		for _, r := range src {
			if !r.Kind.Valid() {
				continue
			}
			buckets[r.Kind] = append(buckets[r.Kind], r)
			total++
		}
	}

	merged := make([]entity.SearchResult, 0, total)
	seen := make(map[string]int, total)
	for _, kind := range bucketOrder {
		for _, r := range buckets[kind] {
			if i, dup := seen[r.Value]; dup {
				merged[i] = enrich(merged[i], r)
				continue
			}
			seen[r.Value] = len(merged)
			merged = append(merged, r)
		}
	}
	return merged
}

// enrich fills kept's empty Label and missing Metadata keys from dropped.
// Kind, ID and Value stay those of kept.
func enrich(kept, dropped entity.SearchResult) entity.SearchResult {
	if kept.Label == "" {
		kept.Label = dropped.Label
	}
	if len(dropped.Metadata) == 0 {
		return kept
	}

	meta := make(map[string]string, len(kept.Metadata)+len(dropped.Metadata))
	for k, v := range dropped.Metadata {
		meta[k] = v
	}
	for k, v := range kept.Metadata {
		meta[k] = v
	}
	kept.Metadata = meta
	return kept
}

// Limit truncates results to at most n entries. n <= 0 means no limit.
func Limit(results []entity.SearchResult, n int) []entity.SearchResult {
	if n <= 0 || len(results) <= n {
		return results
	}
	return results[:n]
}
