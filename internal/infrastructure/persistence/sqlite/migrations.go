package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/tripbook/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SchemaStatus is the profile store's schema version next to the newest
// version this build ships.
type SchemaStatus struct {
	Current int64
	Latest  int64
}

// Pending reports whether the store is behind this build.
func (s SchemaStatus) Pending() bool {
	return s.Current < s.Latest
}

func (s SchemaStatus) String() string {
	if s.Pending() {
		return fmt.Sprintf("v%d (v%d pending)", s.Current, s.Latest)
	}
	return fmt.Sprintf("v%d", s.Current)
}

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("load profile migrations: %w", err)
	}
	return provider, nil
}

// Migrate applies pending profile migrations and returns the resulting
// schema status.
func Migrate(ctx context.Context, db *sql.DB) (SchemaStatus, error) {
	log := logging.FromContext(ctx)

	provider, err := newMigrationProvider(db)
	if err != nil {
		return SchemaStatus{}, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, res := range results {
		log.Info().
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("profile migration applied")
	}
	return schemaStatus(ctx, provider)
}

// ReadSchema reports the schema status of a store without migrating it.
func ReadSchema(ctx context.Context, db *sql.DB) (SchemaStatus, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return SchemaStatus{}, err
	}
	return schemaStatus(ctx, provider)
}

func schemaStatus(ctx context.Context, provider *goose.Provider) (SchemaStatus, error) {
	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("read schema version: %w", err)
	}
	var latest int64
	for _, src := range provider.ListSources() {
		latest = max(latest, src.Version)
	}
	return SchemaStatus{Current: current, Latest: latest}, nil
}
