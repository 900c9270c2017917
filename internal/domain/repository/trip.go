package repository

import (
	"context"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// TripRepository defines operations for trip persistence.
type TripRepository interface {
	// Save inserts a trip and sets its ID.
	Save(ctx context.Context, trip *entity.Trip) error

	// LatestUnitPrice returns the unit price of the most recent trip on the
	// exact directed route. found is false when no trip exists.
	LatestUnitPrice(ctx context.Context, route entity.RouteKey) (price float64, found bool, err error)

	// GetRecent returns the most recently recorded trips, newest first.
	GetRecent(ctx context.Context, limit int) ([]*entity.Trip, error)
}
