package sqlite_test

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/tripbook/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tripbook.sqlite"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close(), "closing an unopened database is a no-op")
}

func TestLazyDB_InitializesOnceAndMigrates(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "tripbook.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)
	db2, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.True(t, lazy.IsInitialized())
	assert.Same(t, db1, db2)

	for _, table := range []string{"recent_items", "catalog_items", "trips"} {
		var name string
		err := db1.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist after migrations", table)
	}

	schema, err := lazy.Schema(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, schema.Current, int64(1))
	assert.False(t, schema.Pending())
	assert.Equal(t, fmt.Sprintf("v%d", schema.Latest), schema.String())
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tripbook.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database initialization failed")
	assert.False(t, lazy.IsInitialized())
}
