package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS catalog_items (
		id BIGSERIAL PRIMARY KEY,
		category TEXT NOT NULL,
		value TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		favorite BOOLEAN NOT NULL DEFAULT FALSE,
		position INTEGER NOT NULL DEFAULT 0,
		metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (category, value)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_items_order ON catalog_items (category, position, value)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id BIGSERIAL PRIMARY KEY,
		trip_date TIMESTAMPTZ NOT NULL,
		vehicle_id BIGINT,
		vehicle_plate TEXT NOT NULL,
		driver_name TEXT NOT NULL DEFAULT '',
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL,
		memo TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_route ON trips (origin, destination, created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_created ON trips (created_at DESC, id DESC)`,
}

// EnsureSchema creates the catalog and trip tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure postgres schema: %w", err)
		}
	}
	return nil
}
