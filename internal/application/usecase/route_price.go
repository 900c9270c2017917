package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/logging"
)

// RoutePrice is a memoized lookup outcome. Found is false for routes
// without history.
type RoutePrice struct {
	Price float64
	Found bool
}

// RoutePriceUseCase proposes the latest unit price used on a directed route.
// Results, including misses, are memoized until the route is invalidated.
type RoutePriceUseCase struct {
	tripRepo repository.TripRepository
	cache    port.Cache[entity.RouteKey, RoutePrice]
	group    singleflight.Group

	mu          sync.Mutex
	epoch       uint64
	generations map[entity.RouteKey]uint64
}

var _ port.RoutePriceLookup = (*RoutePriceUseCase)(nil)

// NewRoutePriceUseCase creates a route price lookup backed by tripRepo.
func NewRoutePriceUseCase(
	tripRepo repository.TripRepository,
	cache port.Cache[entity.RouteKey, RoutePrice],
) *RoutePriceUseCase {
	return &RoutePriceUseCase{
		tripRepo:    tripRepo,
		cache:       cache,
		generations: make(map[entity.RouteKey]uint64),
	}
}

// LookupRoutePrice returns the unit price of the most recent trip on
// origin→destination. Concurrent lookups of the same route share one
// repository query. A non-positive stored price counts as no history.
func (uc *RoutePriceUseCase) LookupRoutePrice(
	ctx context.Context, origin, destination string,
) (float64, bool, error) {
	route := entity.NewRouteKey(origin, destination)
	if !route.Valid() {
		return 0, false, fmt.Errorf("%w: %q", entity.ErrInvalidRoute, route.String())
	}

	if memo, ok := uc.cache.Get(route); ok {
		return memo.Price, memo.Found, nil
	}

	uc.mu.Lock()
	epoch, gen := uc.epoch, uc.generations[route]
	uc.mu.Unlock()

	key := route.String() + "#" + strconv.FormatUint(epoch, 10) + "." + strconv.FormatUint(gen, 10)
	v, err, shared := uc.group.Do(key, func() (any, error) {
		price, found, err := uc.tripRepo.LatestUnitPrice(ctx, route)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest unit price: %w", err)
		}
		if !found || price <= 0 {
			price, found = 0, false
		}
		memo := RoutePrice{Price: price, Found: found}

		uc.mu.Lock()
		// an invalidation during the query means this result may be stale
		if uc.epoch == epoch && uc.generations[route] == gen {
			uc.cache.Set(route, memo)
		}
		uc.mu.Unlock()

		return memo, nil
	})
	if err != nil {
		return 0, false, err
	}

	memo := v.(RoutePrice)
	logging.FromContext(ctx).Debug().
		Str("route", route.String()).
		Bool("found", memo.Found).
		Float64("price", memo.Price).
		Bool("shared", shared).
		Msg("route price lookup")

	return memo.Price, memo.Found, nil
}

// InvalidateRoutePrice drops the memoized value for origin→destination.
// The reverse route is left untouched.
func (uc *RoutePriceUseCase) InvalidateRoutePrice(origin, destination string) {
	route := entity.NewRouteKey(origin, destination)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.generations[route]++
	uc.cache.Remove(route)
}

// InvalidateAll drops every memoized route.
func (uc *RoutePriceUseCase) InvalidateAll() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.epoch++
	uc.cache.Clear()
}
