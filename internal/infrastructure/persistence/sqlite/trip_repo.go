package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/logging"
)

type tripRepo struct {
	db *sql.DB
}

// NewTripRepository creates a new SQLite-backed trip repository.
func NewTripRepository(db *sql.DB) repository.TripRepository {
	return &tripRepo{db: db}
}

func (r *tripRepo) Save(ctx context.Context, trip *entity.Trip) error {
	log := logging.FromContext(ctx)

	var vehicleID sql.NullInt64
	if trip.VehicleID > 0 {
		vehicleID = sql.NullInt64{Int64: trip.VehicleID, Valid: true}
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (trip_date, vehicle_id, vehicle_plate, driver_name, origin, destination,
		                    quantity, unit_price, memo, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.Date.UnixNano(), vehicleID, trip.VehiclePlate, trip.DriverName, trip.Origin, trip.Destination,
		trip.Quantity, trip.UnitPrice, trip.Memo, trip.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}
	trip.ID = entity.TripID(id)

	log.Debug().Int64("id", id).Str("route", trip.Route().String()).Msg("trip saved")
	return nil
}

// LatestUnitPrice returns the price of the trip entered last on route. Entry
// order wins over trip_date, so a back-dated trip becomes the next suggestion.
func (r *tripRepo) LatestUnitPrice(ctx context.Context, route entity.RouteKey) (float64, bool, error) {
	var price float64
	err := r.db.QueryRowContext(ctx,
		`SELECT unit_price FROM trips
		 WHERE origin = ? AND destination = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		route.Origin, route.Destination,
	).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query latest unit price: %w", err)
	}
	return price, true, nil
}

func (r *tripRepo) GetRecent(ctx context.Context, limit int) ([]*entity.Trip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, trip_date, vehicle_id, vehicle_plate, driver_name, origin, destination,
		        quantity, unit_price, memo, created_at
		 FROM trips ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []*entity.Trip{}
	for rows.Next() {
		var (
			t         entity.Trip
			id        int64
			date      int64
			vehicleID sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&id, &date, &vehicleID, &t.VehiclePlate, &t.DriverName, &t.Origin, &t.Destination,
			&t.Quantity, &t.UnitPrice, &t.Memo, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		t.ID = entity.TripID(id)
		t.Date = time.Unix(0, date)
		t.VehicleID = vehicleID.Int64
		t.CreatedAt = time.Unix(0, createdAt)
		trips = append(trips, &t)
	}
	return trips, rows.Err()
}
