package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/logging"
)

// RecentItemStore keeps a bounded, most-recent-first list of committed values
// per category. Storage failures are logged and never surface to callers.
type RecentItemStore struct {
	repo     repository.RecentItemRepository
	capacity int

	mu sync.Mutex
}

var _ port.RecentItems = (*RecentItemStore)(nil)

// NewRecentItemStore creates a store. A non-positive capacity falls back to
// suggest.DefaultRecentCapacity.
func NewRecentItemStore(repo repository.RecentItemRepository, capacity int) *RecentItemStore {
	if capacity <= 0 {
		capacity = suggest.DefaultRecentCapacity
	}
	return &RecentItemStore{
		repo:     repo,
		capacity: capacity,
	}
}

// Capacity returns the maximum list length per category.
func (s *RecentItemStore) Capacity() int {
	return s.capacity
}

// Add moves item to the front of the category's list, inserting it if new,
// and truncates the list to capacity. Blank items are ignored.
func (s *RecentItemStore) Add(ctx context.Context, category entity.Category, item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := category.RecentKey()
	list := s.load(ctx, key)
	s.save(ctx, key, suggest.PushRecent(list, item, s.capacity))
}

// Get returns the category's list, most recent first. It never returns nil.
func (s *RecentItemStore) Get(ctx context.Context, category entity.Category) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load(ctx, category.RecentKey())
	if len(list) > s.capacity {
		list = list[:s.capacity]
	}
	return list
}

// Remove drops a single item from the category's list.
func (s *RecentItemStore) Remove(ctx context.Context, category entity.Category, item string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := category.RecentKey()
	list := s.load(ctx, key)
	next := suggest.RemoveRecent(list, item)
	if len(next) == len(list) {
		return
	}
	s.save(ctx, key, next)
}

// Clear empties the category's list.
func (s *RecentItemStore) Clear(ctx context.Context, category entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(ctx, category.RecentKey(), []string{})
}

func (s *RecentItemStore) load(ctx context.Context, key string) []string {
	list, err := s.repo.LoadList(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("key", key).
			Msg("failed to load recent items, treating as empty")
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

func (s *RecentItemStore) save(ctx context.Context, key string, list []string) {
	if err := s.repo.SaveList(ctx, key, list); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("key", key).
			Int("items", len(list)).
			Msg("failed to save recent items")
	}
}
