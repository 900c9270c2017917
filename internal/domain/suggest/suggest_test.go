package suggest_test

import (
	"fmt"
	"testing"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func result(kind entity.Kind, value string) entity.SearchResult {
	return entity.SearchResult{
		ID:       string(kind) + "-" + value,
		Value:    value,
		Label:    value,
		Kind:     kind,
		Category: entity.CategoryVehicle,
	}
}

func kinds(results []entity.SearchResult) []entity.Kind {
	out := make([]entity.Kind, len(results))
	for i, r := range results {
		out[i] = r.Kind
	}
	return out
}

func values(results []entity.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Value
	}
	return out
}

func TestMerge_DedupKeepsRecent(t *testing.T) {
	merged := suggest.Merge(
		[]entity.SearchResult{result(entity.KindSearch, "A")},
		[]entity.SearchResult{result(entity.KindRecent, "A")},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, entity.KindRecent, merged[0].Kind)
	assert.Equal(t, "A", merged[0].Value)
}

func TestMerge_DedupKeepsCatalogMetadata(t *testing.T) {
	recent := entity.SearchResult{ID: "recent-12가3456", Value: "12가3456", Kind: entity.KindRecent, Category: entity.CategoryVehicle}
	favorite := entity.SearchResult{
		ID:       "favorite-7",
		Value:    "12가3456",
		Label:    "12가3456 (Kim)",
		Kind:     entity.KindFavorite,
		Category: entity.CategoryVehicle,
		Metadata: map[string]string{entity.MetaVehicleID: "7", entity.MetaDefaultUnitPrice: "1200"},
	}

	merged := suggest.Merge([]entity.SearchResult{recent}, []entity.SearchResult{favorite})

	require.Len(t, merged, 1)
	assert.Equal(t, entity.KindRecent, merged[0].Kind)
	assert.Equal(t, "recent-12가3456", merged[0].ID)
	assert.Equal(t, "12가3456 (Kim)", merged[0].Label)
	assert.Equal(t, "7", merged[0].Meta(entity.MetaVehicleID))
	assert.Equal(t, "1200", merged[0].Meta(entity.MetaDefaultUnitPrice))
	assert.Nil(t, recent.Metadata, "inputs are not mutated")
}

func TestMerge_BucketOrder(t *testing.T) {
	merged := suggest.Merge([]entity.SearchResult{
		result(entity.KindSearch, "s"),
		result(entity.KindFavorite, "f"),
		result(entity.KindExact, "e"),
		result(entity.KindRecent, "r"),
	})

	assert.Equal(t, []entity.Kind{
		entity.KindRecent, entity.KindExact, entity.KindFavorite, entity.KindSearch,
	}, kinds(merged))
}

func TestMerge_PreservesSourceOrderWithinBucket(t *testing.T) {
	merged := suggest.Merge(
		[]entity.SearchResult{result(entity.KindSearch, "b"), result(entity.KindSearch, "a")},
		[]entity.SearchResult{result(entity.KindSearch, "c")},
	)

	assert.Equal(t, []string{"b", "a", "c"}, values(merged))
}

func TestMerge_DropsUnknownKindsAndHandlesEmpty(t *testing.T) {
	assert.Empty(t, suggest.Merge())
	assert.Empty(t, suggest.Merge(nil, []entity.SearchResult{result("bogus", "x")}))
}

func TestMerge_ValueIsUniqueAcrossBuckets(t *testing.T) {
	merged := suggest.Merge(
		[]entity.SearchResult{result(entity.KindSearch, "x"), result(entity.KindSearch, "y")},
		[]entity.SearchResult{result(entity.KindFavorite, "y"), result(entity.KindExact, "x")},
	)

	require.Len(t, merged, 2)
	assert.Equal(t, []string{"x", "y"}, values(merged))
	assert.Equal(t, []entity.Kind{entity.KindExact, entity.KindFavorite}, kinds(merged))
}

func TestScenario_RecentFavoritePlateCollapses(t *testing.T) {
	plate := "12가3456"
	favorites := []entity.SearchResult{{
		ID: "fav-1", Value: plate, Label: plate + " (Kim)", Kind: entity.KindFavorite, Category: entity.CategoryVehicle,
	}}

	merged := suggest.Merge(
		suggest.RecentResults(entity.CategoryVehicle, []string{plate}, "12"),
		suggest.FilterFavorites(favorites, "12"),
	)

	require.Len(t, merged, 1)
	assert.Equal(t, entity.KindRecent, merged[0].Kind)
	assert.Equal(t, plate, merged[0].Value)
}

func TestScenario_EmptyQueryShowsFavoritesInOrder(t *testing.T) {
	favorites := suggest.FavoriteResults(entity.CategoryLocation, []string{"Seoul", "Incheon", "Busan"})

	merged := suggest.Merge(
		suggest.RecentResults(entity.CategoryLocation, nil, ""),
		suggest.FilterFavorites(favorites, ""),
	)

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"Seoul", "Incheon", "Busan"}, values(merged))
	for _, r := range merged {
		assert.Equal(t, entity.KindFavorite, r.Kind)
	}
}

func TestPushRecent_CapEvictsOldest(t *testing.T) {
	var list []string
	for i := 1; i <= 11; i++ {
		list = suggest.PushRecent(list, fmt.Sprintf("item-%d", i), suggest.DefaultRecentCapacity)
	}

	require.Len(t, list, 10)
	assert.Equal(t, "item-11", list[0])
	assert.NotContains(t, list, "item-1")
}

func TestPushRecent_MoveToFront(t *testing.T) {
	list := []string{"a", "b", "c"}

	got := suggest.PushRecent(list, "c", 10)

	assert.Equal(t, []string{"c", "a", "b"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, list, "input must not be mutated")
}

func TestRemoveRecent(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, suggest.RemoveRecent([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a"}, suggest.RemoveRecent([]string{"a"}, "zzz"))
}

func TestMatch(t *testing.T) {
	assert.True(t, suggest.Match("12가3456", "12"))
	assert.True(t, suggest.Match("Seoul Station", "seoul"))
	assert.True(t, suggest.Match("anything", "  "))
	assert.False(t, suggest.Match("Busan", "seoul"))

	decomposed := norm.NFD.String("가")
	assert.True(t, suggest.Match("12가3456", "2"+decomposed))
	assert.True(t, suggest.Equal("SEOUL ", "seoul"))
}

func TestRecentResults_FiltersByQuery(t *testing.T) {
	got := suggest.RecentResults(entity.CategoryVehicle, []string{"12가3456", "34나5678", ""}, "34")

	require.Len(t, got, 2)
	assert.Equal(t, []string{"12가3456", "34나5678"}, values(got))
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestEmptyStateFor(t *testing.T) {
	assert.Equal(t, suggest.EmptyTypeToSearch, suggest.EmptyStateFor("", nil))
	assert.Equal(t, suggest.EmptyNoMatches, suggest.EmptyStateFor("zz", nil))
	assert.Equal(t, suggest.EmptyNone, suggest.EmptyStateFor("", []entity.SearchResult{result(entity.KindRecent, "a")}))
}

func TestLimit(t *testing.T) {
	in := []entity.SearchResult{result(entity.KindSearch, "a"), result(entity.KindSearch, "b")}
	assert.Len(t, suggest.Limit(in, 1), 1)
	assert.Len(t, suggest.Limit(in, 0), 2)
}
