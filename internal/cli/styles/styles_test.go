package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tripbook/internal/domain/build"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
)

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, "Type to search", EmptyMessage(suggest.EmptyTypeToSearch))
	assert.Equal(t, "No results", EmptyMessage(suggest.EmptyNoMatches))
	assert.Empty(t, EmptyMessage(suggest.EmptyNone))
}

func TestRenderList(t *testing.T) {
	r := NewResultsRenderer(NewTheme())

	out := r.RenderList([]entity.SearchResult{
		{Value: "12가3456", Label: "12가3456 (Kim)", Kind: entity.KindRecent},
		{Value: "Seoul", Kind: entity.KindSearch},
	}, 1, suggest.EmptyNone)

	assert.Contains(t, out, "12가3456 (Kim)")
	assert.Contains(t, out, "Seoul")
}

func TestRenderList_Empty(t *testing.T) {
	r := NewResultsRenderer(NewTheme())

	assert.Contains(t, r.RenderList(nil, -1, suggest.EmptyNoMatches), "No results")
	assert.Empty(t, r.RenderList(nil, -1, suggest.EmptyNone))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1350", FormatPrice(1350))
	assert.Equal(t, "12.5", FormatPrice(12.5))
}

func TestRenderTrips(t *testing.T) {
	r := NewTripRenderer(NewTheme())

	out := r.RenderTrips([]*entity.Trip{{
		ID:           3,
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		VehiclePlate: "12가3456",
		Origin:       "Seoul",
		Destination:  "Busan",
		Quantity:     2,
		UnitPrice:    1350,
	}})

	assert.Contains(t, out, "2026-03-02")
	assert.Contains(t, out, "Seoul→Busan")
	assert.Contains(t, out, "2700")
	assert.Contains(t, r.RenderTrips(nil), "No trips recorded")
}

func TestRenderCatalog(t *testing.T) {
	r := NewResultsRenderer(NewTheme())

	out := r.RenderCatalog([]entity.SearchResult{
		{ID: "favorite:vehicle:7", Value: "12가3456", Label: "12가3456 (Kim)", Kind: entity.KindFavorite, Category: entity.CategoryVehicle},
	})

	assert.Contains(t, out, "12가3456 (Kim)")
	assert.Contains(t, out, "favorite")
	assert.Contains(t, r.RenderCatalog(nil), "No catalog items")
}

func TestCatalogID(t *testing.T) {
	assert.Equal(t, "7", catalogID("favorite:vehicle:7"))
	assert.Equal(t, "plain", catalogID("plain"))
}

func TestAboutRenderer_ShowsSchemaAndClient(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(
		build.Info{Version: "v1.4.0", Commit: "0123456"},
		StoreInfo{Driver: "sqlite", Location: "/tmp/trips.db", Schema: "v2 (v3 pending)", Broker: "disabled"},
	)

	assert.Contains(t, out, "v2 (v3 pending)")
	assert.Contains(t, out, "tripbook/v1.4.0")
	assert.Contains(t, out, "/tmp/trips.db")
}
