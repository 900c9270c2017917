package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/logging"
)

const defaultCatalogSearchLimit = 20

// SearchCatalogUseCase answers free-text lookups against the registered
// vehicles, locations and drivers.
type SearchCatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	limit       int
}

var _ port.SearchProvider = (*SearchCatalogUseCase)(nil)

// NewSearchCatalogUseCase creates a catalog search use case. limit caps the
// number of text matches fetched per query.
func NewSearchCatalogUseCase(catalogRepo repository.CatalogRepository, limit int) *SearchCatalogUseCase {
	if limit <= 0 {
		limit = defaultCatalogSearchLimit
	}
	return &SearchCatalogUseCase{
		catalogRepo: catalogRepo,
		limit:       limit,
	}
}

// Search returns exact, favorite and search kind results for query.
// Exact means case-insensitive equality on value or label. Favorites that
// contain the query come next, then every other containment match.
// An empty query returns an empty slice without touching the repository.
func (uc *SearchCatalogUseCase) Search(
	ctx context.Context, category entity.Category, query string,
) ([]entity.SearchResult, error) {
	log := logging.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.SearchResult{}, nil
	}

	var (
		matches   []*entity.CatalogItem
		favorites []*entity.CatalogItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := uc.catalogRepo.Search(gctx, category, query, uc.limit)
		if err != nil {
			return fmt.Errorf("failed to search catalog: %w", err)
		}
		matches = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.catalogRepo.Favorites(gctx, category)
		if err != nil {
			return fmt.Errorf("failed to load favorites: %w", err)
		}
		favorites = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[entity.CatalogItemID]struct{}, len(matches)+len(favorites))
	var exact, favs, rest []entity.SearchResult

	for _, item := range matches {
		if item == nil {
			continue
		}
		if suggest.Equal(item.Value, query) || suggest.Equal(item.Label, query) {
			exact = append(exact, catalogResult(item, entity.KindExact))
			seen[item.ID] = struct{}{}
		}
	}
	for _, item := range favorites {
		if item == nil {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if suggest.Match(item.Value, query) || suggest.Match(item.Label, query) {
			favs = append(favs, catalogResult(item, entity.KindFavorite))
			seen[item.ID] = struct{}{}
		}
	}
	for _, item := range matches {
		if item == nil {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		rest = append(rest, catalogResult(item, entity.KindSearch))
	}

	results := make([]entity.SearchResult, 0, len(exact)+len(favs)+len(rest))
	results = append(results, exact...)
	results = append(results, favs...)
	results = append(results, rest...)

	log.Debug().
		Str("category", string(category)).
		Str("query", query).
		Int("exact", len(exact)).
		Int("favorite", len(favs)).
		Int("search", len(rest)).
		Msg("catalog search completed")

	return results, nil
}

// Favorites returns the category's favorites as favorite-kind results in
// display order, for seeding a bound input.
func (uc *SearchCatalogUseCase) Favorites(ctx context.Context, category entity.Category) ([]entity.SearchResult, error) {
	items, err := uc.catalogRepo.Favorites(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		results = append(results, catalogResult(item, entity.KindFavorite))
	}
	return results, nil
}

// Register saves a catalog item.
func (uc *SearchCatalogUseCase) Register(ctx context.Context, item *entity.CatalogItem) error {
	if item == nil || strings.TrimSpace(item.Value) == "" {
		return errors.New("catalog item value is required")
	}
	if !item.Category.Valid() || item.Category == entity.CategoryGeneral {
		return fmt.Errorf("%w: %q", entity.ErrUnknownCategory, item.Category)
	}
	item.Value = strings.TrimSpace(item.Value)
	if item.Label == "" {
		item.Label = item.Value
	}

	if err := uc.catalogRepo.Save(ctx, item); err != nil {
		return fmt.Errorf("failed to save catalog item: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("category", string(item.Category)).
		Str("value", item.Value).
		Msg("catalog item registered")
	return nil
}

// Unregister deletes a catalog item.
func (uc *SearchCatalogUseCase) Unregister(ctx context.Context, id entity.CatalogItemID) error {
	if err := uc.catalogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}
	return nil
}

func catalogResult(item *entity.CatalogItem, kind entity.Kind) entity.SearchResult {
	return entity.SearchResult{
		ID:       suggest.ResultID(kind, item.Category, strconv.FormatInt(int64(item.ID), 10)),
		Value:    item.Value,
		Label:    item.Label,
		Kind:     kind,
		Category: item.Category,
		Metadata: maps.Clone(item.Metadata),
	}
}
