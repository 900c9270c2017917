package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/logging"
)

const catalogColumns = `id, category, value, label, favorite, position, metadata, created_at`

type catalogRepo struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLite-backed catalog repository.
func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepo{db: db}
}

// Search filters in Go: SQLite's LIKE and lower() only fold ASCII, and
// plates and place names are often Hangul or accented.
func (r *catalogRepo) Search(ctx context.Context, category entity.Category, query string, limit int) ([]*entity.CatalogItem, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category == entity.CategoryGeneral {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+catalogColumns+` FROM catalog_items ORDER BY position ASC, value ASC`)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+catalogColumns+` FROM catalog_items WHERE category = ? ORDER BY position ASC, value ASC`,
			string(category))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	items := []*entity.CatalogItem{}
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		if !suggest.Match(item.Value, query) && !suggest.Match(item.Label, query) {
			continue
		}
		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, rows.Err()
}

func (r *catalogRepo) Favorites(ctx context.Context, category entity.Category) ([]*entity.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+catalogColumns+` FROM catalog_items
		 WHERE favorite = 1 AND (? = 'general' OR category = ?)
		 ORDER BY position ASC, value ASC`,
		string(category), string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	items := []*entity.CatalogItem{}
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *catalogRepo) Save(ctx context.Context, item *entity.CatalogItem) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("category", string(item.Category)).Str("value", item.Value).Msg("saving catalog item")

	meta, err := encodeMetadata(item.Metadata)
	if err != nil {
		return err
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	var id int64
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO catalog_items (category, value, label, favorite, position, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (category, value) DO UPDATE SET
		     label = excluded.label,
		     favorite = excluded.favorite,
		     position = excluded.position,
		     metadata = excluded.metadata
		 RETURNING id`,
		string(item.Category), item.Value, item.Label, boolToInt(item.Favorite), item.Position,
		meta, item.CreatedAt.UnixNano(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to save catalog item: %w", err)
	}
	item.ID = entity.CatalogItemID(id)
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id entity.CatalogItemID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catalog_items WHERE id = ?`, int64(id)); err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCatalogItem(row rowScanner) (*entity.CatalogItem, error) {
	var (
		id        int64
		category  string
		favorite  int
		metadata  string
		createdAt int64
		item      entity.CatalogItem
	)
	if err := row.Scan(&id, &category, &item.Value, &item.Label, &favorite, &item.Position, &metadata, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan catalog item: %w", err)
	}
	item.ID = entity.CatalogItemID(id)
	item.Category = entity.Category(category)
	item.Favorite = favorite != 0
	item.CreatedAt = time.Unix(0, createdAt)
	meta, err := decodeMetadata(metadata)
	if err != nil {
		return nil, err
	}
	item.Metadata = meta
	return &item, nil
}

func encodeMetadata(meta map[string]string) (string, error) {
	if len(meta) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return string(data), nil
}

func decodeMetadata(raw string) (map[string]string, error) {
	if raw == "" || raw == "{}" {
		return nil, nil
	}
	var meta map[string]string
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return meta, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
