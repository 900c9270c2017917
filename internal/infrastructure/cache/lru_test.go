package cache

import (
	"sync"
	"testing"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_SetGetAndMiss(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, val)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	// touch "a" so "b" becomes the eviction candidate
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_UpdateDoesNotDuplicate(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("a", 100)

	val, _ := c.Get("a")
	assert.Equal(t, 100, val)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Remove("a")
	c.Remove("not-there")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestLRU_ZeroCapacityHoldsOne(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_RouteKeys(t *testing.T) {
	c := NewLRU[entity.RouteKey, float64](4)
	c.Set(entity.NewRouteKey("Seoul", "Busan"), 50000)

	_, ok := c.Get(entity.NewRouteKey("Busan", "Seoul"))
	assert.False(t, ok, "routes are directed")

	price, ok := c.Get(entity.NewRouteKey(" Seoul", "Busan "))
	require.True(t, ok)
	assert.InDelta(t, 50000, price, 0.001)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int, int](50)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			c.Set(i, i*10)
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Get(i)
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Remove(i - 1)
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 50)
}
