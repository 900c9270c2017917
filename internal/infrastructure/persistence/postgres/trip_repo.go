package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tripRepo struct {
	pool *pgxpool.Pool
}

// NewTripRepository creates a new PostgreSQL-backed trip repository.
func NewTripRepository(pool *pgxpool.Pool) repository.TripRepository {
	return &tripRepo{pool: pool}
}

func (r *tripRepo) Save(ctx context.Context, trip *entity.Trip) error {
	log := logging.FromContext(ctx)

	var vehicleID *int64
	if trip.VehicleID > 0 {
		vehicleID = &trip.VehicleID
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trips (trip_date, vehicle_id, vehicle_plate, driver_name, origin, destination,
		                    quantity, unit_price, memo, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		trip.Date, vehicleID, trip.VehiclePlate, trip.DriverName, trip.Origin, trip.Destination,
		trip.Quantity, trip.UnitPrice, trip.Memo, trip.CreatedAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	trip.ID = entity.TripID(id)

	log.Debug().Int64("id", id).Str("route", trip.Route().String()).Msg("trip saved")
	return nil
}

func (r *tripRepo) LatestUnitPrice(ctx context.Context, route entity.RouteKey) (float64, bool, error) {
	var price float64
	err := r.pool.QueryRow(ctx,
		`SELECT unit_price FROM trips
		 WHERE origin = $1 AND destination = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		route.Origin, route.Destination,
	).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query latest unit price: %w", err)
	}
	return price, true, nil
}

func (r *tripRepo) GetRecent(ctx context.Context, limit int) ([]*entity.Trip, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, trip_date, vehicle_id, vehicle_plate, driver_name, origin, destination,
		        quantity, unit_price, memo, created_at
		 FROM trips ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}

	trips, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Trip, error) {
		var (
			t         entity.Trip
			id        int64
			vehicleID *int64
		)
		if err := row.Scan(&id, &t.Date, &vehicleID, &t.VehiclePlate, &t.DriverName, &t.Origin, &t.Destination,
			&t.Quantity, &t.UnitPrice, &t.Memo, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.ID = entity.TripID(id)
		if vehicleID != nil {
			t.VehicleID = *vehicleID
		}
		return &t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan trips: %w", err)
	}
	if trips == nil {
		trips = []*entity.Trip{}
	}
	return trips, nil
}
