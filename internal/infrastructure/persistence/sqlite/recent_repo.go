package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/logging"
)

type recentItemRepo struct {
	db *sql.DB
}

// NewRecentItemRepository creates a new SQLite-backed recent list repository.
func NewRecentItemRepository(db *sql.DB) repository.RecentItemRepository {
	return &recentItemRepo{db: db}
}

func (r *recentItemRepo) LoadList(ctx context.Context, key string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT item FROM recent_items WHERE list_key = ? ORDER BY position ASC`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent items: %w", err)
	}
	defer rows.Close()

	items := []string{}
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan recent item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SaveList replaces the whole list in one transaction so readers never see
// a half-written list.
func (r *recentItemRepo) SaveList(ctx context.Context, key string, items []string) error {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_items WHERE list_key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear recent items: %w", err)
	}
	for i, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recent_items (list_key, position, item) VALUES (?, ?, ?)`, key, i, item); err != nil {
			return fmt.Errorf("failed to insert recent item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recent items: %w", err)
	}

	log.Debug().Str("key", key).Int("count", len(items)).Msg("recent list saved")
	return nil
}
