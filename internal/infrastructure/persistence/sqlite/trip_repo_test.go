package sqlite_test

import (
	"testing"
	"time"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrip(origin, destination string, price float64, date time.Time) *entity.Trip {
	return &entity.Trip{
		Date:         date,
		VehiclePlate: "12가3456",
		Origin:       origin,
		Destination:  destination,
		Quantity:     1,
		UnitPrice:    price,
		CreatedAt:    date,
	}
}

func TestTripRepository_LatestUnitPrice(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewTripRepository(openTestDB(t))
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newTrip("Seoul", "Busan", 1200, base)))
	require.NoError(t, repo.Save(ctx, newTrip("Seoul", "Busan", 1350, base.Add(24*time.Hour))))
	require.NoError(t, repo.Save(ctx, newTrip("Busan", "Seoul", 900, base.Add(48*time.Hour))))

	price, found, err := repo.LatestUnitPrice(ctx, entity.NewRouteKey("Seoul", "Busan"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 1350, price, 0.0001)

	price, found, err = repo.LatestUnitPrice(ctx, entity.NewRouteKey("Busan", "Seoul"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 900, price, 0.0001, "routes are directed")
}

func TestTripRepository_LatestUnitPrice_BackdatedEntryWins(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewTripRepository(openTestDB(t))
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newTrip("Seoul", "Busan", 1350, base)))

	backdated := newTrip("Seoul", "Busan", 1400, base.Add(-72*time.Hour))
	backdated.CreatedAt = base.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, backdated))

	price, found, err := repo.LatestUnitPrice(ctx, entity.NewRouteKey("Seoul", "Busan"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 1400, price, 0.0001)
}

func TestTripRepository_LatestUnitPrice_NoHistory(t *testing.T) {
	repo := sqlite.NewTripRepository(openTestDB(t))

	price, found, err := repo.LatestUnitPrice(testCtx(), entity.NewRouteKey("Daegu", "Ulsan"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, price)
}

func TestTripRepository_SaveAndGetRecent(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewTripRepository(openTestDB(t))
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := newTrip("Seoul", "Busan", 1200, base)
	first.VehicleID = 7
	first.DriverName = "Kim"
	require.NoError(t, repo.Save(ctx, first))
	second := newTrip("Incheon", "Suwon", 800, base.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, second))
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	trips, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
	assert.Equal(t, first.ID, trips[1].ID)
	assert.Equal(t, int64(7), trips[1].VehicleID)
	assert.Equal(t, "Kim", trips[1].DriverName)
	assert.True(t, trips[1].Date.Equal(base))

	limited, err := repo.GetRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
