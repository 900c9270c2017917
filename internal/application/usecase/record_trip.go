package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/logging"
)

// RecordTripUseCase persists trips and keeps the suggestion state that
// depends on them in step.
type RecordTripUseCase struct {
	tripRepo  repository.TripRepository
	prices    port.RoutePriceLookup
	recents   port.RecentItems
	publisher port.TripEventPublisher
}

// NewRecordTripUseCase creates a trip recording use case.
// publisher may be nil when no broker is configured.
func NewRecordTripUseCase(
	tripRepo repository.TripRepository,
	prices port.RoutePriceLookup,
	recents port.RecentItems,
	publisher port.TripEventPublisher,
) *RecordTripUseCase {
	return &RecordTripUseCase{
		tripRepo:  tripRepo,
		prices:    prices,
		recents:   recents,
		publisher: publisher,
	}
}

// Record validates and saves trip. On success the route's memoized price
// is dropped, the trip's plate, endpoints and driver are pushed to the
// recent lists, and a trip.recorded event is published. Publishing is best
// effort.
func (uc *RecordTripUseCase) Record(ctx context.Context, trip *entity.Trip) error {
	log := logging.FromContext(ctx)

	if err := trip.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if trip.Date.IsZero() {
		trip.Date = now
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = now
	}

	if err := uc.tripRepo.Save(ctx, trip); err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}

	route := trip.Route()
	if uc.prices != nil {
		uc.prices.InvalidateRoutePrice(route.Origin, route.Destination)
	}

	if uc.recents != nil {
		uc.recents.Add(ctx, entity.CategoryVehicle, trip.VehiclePlate)
		uc.recents.Add(ctx, entity.CategoryLocation, route.Origin)
		uc.recents.Add(ctx, entity.CategoryLocation, route.Destination)
		if trip.DriverName != "" {
			uc.recents.Add(ctx, entity.CategoryDriver, trip.DriverName)
		}
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishTripRecorded(ctx, trip); err != nil {
			log.Warn().Err(err).Int64("trip_id", int64(trip.ID)).Msg("failed to publish trip.recorded")
		}
	}

	log.Info().
		Int64("trip_id", int64(trip.ID)).
		Str("route", route.String()).
		Float64("unit_price", trip.UnitPrice).
		Msg("trip recorded")

	return nil
}

// ListRecent returns the latest trips, newest first.
func (uc *RecordTripUseCase) ListRecent(ctx context.Context, limit int) ([]*entity.Trip, error) {
	if limit <= 0 {
		limit = 20
	}

	trips, err := uc.tripRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent trips: %w", err)
	}
	return trips, nil
}
