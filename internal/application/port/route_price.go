package port

import "context"

// RoutePriceLookup proposes the most recently used unit price for a
// directed route.
type RoutePriceLookup interface {
	// LookupRoutePrice returns the latest unit price for origin→destination.
	// found is false when the route has no history.
	LookupRoutePrice(ctx context.Context, origin, destination string) (price float64, found bool, err error)

	// InvalidateRoutePrice drops any memoized value for the route.
	InvalidateRoutePrice(origin, destination string)

	// InvalidateAll drops every memoized value, e.g. after invalidation
	// events may have been missed.
	InvalidateAll()
}
