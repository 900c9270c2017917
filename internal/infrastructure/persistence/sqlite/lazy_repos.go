// Package sqlite provides SQLite implementations of domain repositories.
//
// # Lazy Repository Infrastructure
//
// The lazy wrappers below implement the same repository interfaces as their
// eager counterparts but open the database on first use, so CLI commands that
// never touch the profile store skip connection setup and migrations.
package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
)

// dbProvider hands out the profile database, opening it on first use.
type dbProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// LazyRecentItemRepository wraps a recent list repository with lazy database initialization.
type LazyRecentItemRepository struct {
	provider dbProvider
	repo     repository.RecentItemRepository
	once     sync.Once
	initErr  error
}

// NewLazyRecentItemRepository creates a lazy-loading recent list repository.
func NewLazyRecentItemRepository(provider dbProvider) repository.RecentItemRepository {
	return &LazyRecentItemRepository{provider: provider}
}

func (r *LazyRecentItemRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewRecentItemRepository(db)
	})
	return r.initErr
}

func (r *LazyRecentItemRepository) LoadList(ctx context.Context, key string) ([]string, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.LoadList(ctx, key)
}

func (r *LazyRecentItemRepository) SaveList(ctx context.Context, key string, items []string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveList(ctx, key, items)
}

// LazyCatalogRepository wraps a catalog repository with lazy database initialization.
type LazyCatalogRepository struct {
	provider dbProvider
	repo     repository.CatalogRepository
	once     sync.Once
	initErr  error
}

// NewLazyCatalogRepository creates a lazy-loading catalog repository.
func NewLazyCatalogRepository(provider dbProvider) repository.CatalogRepository {
	return &LazyCatalogRepository{provider: provider}
}

func (r *LazyCatalogRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewCatalogRepository(db)
	})
	return r.initErr
}

func (r *LazyCatalogRepository) Search(ctx context.Context, category entity.Category, query string, limit int) ([]*entity.CatalogItem, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Search(ctx, category, query, limit)
}

func (r *LazyCatalogRepository) Favorites(ctx context.Context, category entity.Category) ([]*entity.CatalogItem, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Favorites(ctx, category)
}

func (r *LazyCatalogRepository) Save(ctx context.Context, item *entity.CatalogItem) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, item)
}

func (r *LazyCatalogRepository) Delete(ctx context.Context, id entity.CatalogItemID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}

// LazyTripRepository wraps a trip repository with lazy database initialization.
type LazyTripRepository struct {
	provider dbProvider
	repo     repository.TripRepository
	once     sync.Once
	initErr  error
}

// NewLazyTripRepository creates a lazy-loading trip repository.
func NewLazyTripRepository(provider dbProvider) repository.TripRepository {
	return &LazyTripRepository{provider: provider}
}

func (r *LazyTripRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewTripRepository(db)
	})
	return r.initErr
}

func (r *LazyTripRepository) Save(ctx context.Context, trip *entity.Trip) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, trip)
}

func (r *LazyTripRepository) LatestUnitPrice(ctx context.Context, route entity.RouteKey) (float64, bool, error) {
	if err := r.init(ctx); err != nil {
		return 0, false, err
	}
	return r.repo.LatestUnitPrice(ctx, route)
}

func (r *LazyTripRepository) GetRecent(ctx context.Context, limit int) ([]*entity.Trip, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetRecent(ctx, limit)
}
