package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const catalogColumns = `id, category, value, label, favorite, position, metadata, created_at`

type catalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool) repository.CatalogRepository {
	return &catalogRepo{pool: pool}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns query into an ILIKE substring pattern with the
// wildcards in query matched literally.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(query)) + "%"
}

func (r *catalogRepo) Search(ctx context.Context, category entity.Category, query string, limit int) ([]*entity.CatalogItem, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+catalogColumns+` FROM catalog_items
		 WHERE ($1 = 'general' OR category = $1)
		   AND (value ILIKE $2 OR label ILIKE $2)
		 ORDER BY position ASC, value ASC
		 LIMIT $3`,
		string(category), containsPattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	return collectCatalogItems(rows)
}

func (r *catalogRepo) Favorites(ctx context.Context, category entity.Category) ([]*entity.CatalogItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+catalogColumns+` FROM catalog_items
		 WHERE favorite AND ($1 = 'general' OR category = $1)
		 ORDER BY position ASC, value ASC`,
		string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	return collectCatalogItems(rows)
}

func (r *catalogRepo) Save(ctx context.Context, item *entity.CatalogItem) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("category", string(item.Category)).Str("value", item.Value).Msg("saving catalog item")

	meta := item.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO catalog_items (category, value, label, favorite, position, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (category, value) DO UPDATE SET
		     label = EXCLUDED.label,
		     favorite = EXCLUDED.favorite,
		     position = EXCLUDED.position,
		     metadata = EXCLUDED.metadata
		 RETURNING id`,
		string(item.Category), item.Value, item.Label, item.Favorite, item.Position, meta, item.CreatedAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to save catalog item: %w", err)
	}
	item.ID = entity.CatalogItemID(id)
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id entity.CatalogItemID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM catalog_items WHERE id = $1`, int64(id)); err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}
	return nil
}

func collectCatalogItems(rows pgx.Rows) ([]*entity.CatalogItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.CatalogItem, error) {
		var (
			id       int64
			category string
			item     entity.CatalogItem
		)
		if err := row.Scan(&id, &category, &item.Value, &item.Label, &item.Favorite, &item.Position,
			&item.Metadata, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.ID = entity.CatalogItemID(id)
		item.Category = entity.Category(category)
		if len(item.Metadata) == 0 {
			item.Metadata = nil
		}
		return &item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog items: %w", err)
	}
	if items == nil {
		items = []*entity.CatalogItem{}
	}
	return items, nil
}
