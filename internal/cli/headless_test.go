package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/application/port/mocks"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/bnema/tripbook/internal/ui/component"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(
		logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console")),
		5*time.Second,
	)
	t.Cleanup(cancel)
	return ctx
}

type staticRecents map[entity.Category][]string

func (r staticRecents) Add(context.Context, entity.Category, string) {}

func (r staticRecents) Get(_ context.Context, category entity.Category) []string {
	return r[category]
}

func TestSearchOnce_QueryMergesRecentAndProvider(t *testing.T) {
	search := port.SearchFunc(func(_ context.Context, category entity.Category, query string) ([]entity.SearchResult, error) {
		assert.Equal(t, entity.CategoryLocation, category)
		assert.Equal(t, "Bu", query)
		return []entity.SearchResult{
			{Value: "Busan", Kind: entity.KindSearch, Category: category},
			{Value: "Bucheon", Kind: entity.KindSearch, Category: category},
		}, nil
	})

	view, err := SearchOnce(testCtx(t), SearchOnceOptions{
		Search:   search,
		Recent:   staticRecents{entity.CategoryLocation: {"Busan", "Seoul"}},
		Category: entity.CategoryLocation,
		Query:    "Bu",
	})
	require.NoError(t, err)

	require.Len(t, view.Results, 2)
	assert.Equal(t, "Busan", view.Results[0].Value)
	assert.Equal(t, entity.KindRecent, view.Results[0].Kind)
	assert.Equal(t, "Bucheon", view.Results[1].Value)
	assert.Equal(t, suggest.EmptyNone, view.Empty)
}

func TestSearchOnce_EmptyQueryListsRecentsWithoutProvider(t *testing.T) {
	search := port.SearchFunc(func(context.Context, entity.Category, string) ([]entity.SearchResult, error) {
		t.Fatal("provider must not be called for an empty query")
		return nil, nil
	})

	view, err := SearchOnce(testCtx(t), SearchOnceOptions{
		Search:   search,
		Recent:   staticRecents{entity.CategoryVehicle: {"12가3456", "34나5678"}},
		Category: entity.CategoryVehicle,
	})
	require.NoError(t, err)

	require.Len(t, view.Results, 2)
	assert.Equal(t, "12가3456", view.Results[0].Value)
}

func TestSearchOnce_ProviderErrorGivesNoMatches(t *testing.T) {
	search := port.SearchFunc(func(context.Context, entity.Category, string) ([]entity.SearchResult, error) {
		return nil, errors.New("db down")
	})

	view, err := SearchOnce(testCtx(t), SearchOnceOptions{
		Search:   search,
		Category: entity.CategoryDriver,
		Query:    "kim",
	})
	require.NoError(t, err)

	assert.Empty(t, view.Results)
	assert.Equal(t, suggest.EmptyNoMatches, view.Empty)
}

func TestSuggestPrice_AppliesLatestRoutePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockRoutePriceLookup(ctrl)
	lookup.EXPECT().LookupRoutePrice(gomock.Any(), "Seoul", "Busan").Return(1350.0, true, nil)

	state, err := SuggestPrice(testCtx(t), SuggestPriceOptions{
		Lookup:      lookup,
		Origin:      "Seoul",
		Destination: "Busan",
	})
	require.NoError(t, err)

	assert.Equal(t, component.RowPriceState{Price: 1350, AutoLoaded: true}, state)
}

func TestSuggestPrice_NoHistoryKeepsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockRoutePriceLookup(ctrl)
	lookup.EXPECT().LookupRoutePrice(gomock.Any(), "Busan", "Seoul").Return(0.0, false, nil)

	state, err := SuggestPrice(testCtx(t), SuggestPriceOptions{
		Lookup:      lookup,
		Origin:      "Busan",
		Destination: "Seoul",
	})
	require.NoError(t, err)

	assert.Equal(t, component.RowPriceState{Price: component.DefaultRowPrice}, state)
}

func TestSuggestPrice_LookupFailureKeepsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockRoutePriceLookup(ctrl)
	lookup.EXPECT().LookupRoutePrice(gomock.Any(), "Seoul", "Busan").Return(0.0, false, errors.New("db down"))

	state, err := SuggestPrice(testCtx(t), SuggestPriceOptions{
		Lookup:      lookup,
		Origin:      "Seoul",
		Destination: "Busan",
	})
	require.NoError(t, err)

	assert.Equal(t, component.RowPriceState{Price: component.DefaultRowPrice}, state)
}

func TestSuggestPrice_LookupFailureKeepsInitialPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockRoutePriceLookup(ctrl)
	lookup.EXPECT().LookupRoutePrice(gomock.Any(), "Seoul", "Busan").Return(0.0, false, errors.New("db down"))

	state, err := SuggestPrice(testCtx(t), SuggestPriceOptions{
		Lookup:       lookup,
		Eligibility:  component.EligibleInitialPrice,
		Origin:       "Seoul",
		Destination:  "Busan",
		InitialPrice: 900,
	})
	require.NoError(t, err)

	assert.Equal(t, component.RowPriceState{Price: 900}, state)
}

func TestSuggestPrice_IneligibleInitialPriceSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockRoutePriceLookup(ctrl)

	state, err := SuggestPrice(testCtx(t), SuggestPriceOptions{
		Lookup:       lookup,
		Eligibility:  component.EligibleSentinelOnly,
		Origin:       "Seoul",
		Destination:  "Busan",
		InitialPrice: 900,
	})
	require.NoError(t, err)

	assert.Equal(t, component.RowPriceState{Price: 900}, state)
}

func TestSuggestPrice_InitialPolicyReplacesInitialPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockRoutePriceLookup(ctrl)
	lookup.EXPECT().LookupRoutePrice(gomock.Any(), "Seoul", "Busan").Return(1350.0, true, nil)

	state, err := SuggestPrice(testCtx(t), SuggestPriceOptions{
		Lookup:       lookup,
		Eligibility:  component.EligibleInitialPrice,
		Origin:       "Seoul",
		Destination:  "Busan",
		InitialPrice: 900,
	})
	require.NoError(t, err)

	assert.Equal(t, component.RowPriceState{Price: 1350, AutoLoaded: true}, state)
}

func TestSuggestPrice_InvalidRoute(t *testing.T) {
	_, err := SuggestPrice(testCtx(t), SuggestPriceOptions{Origin: "Seoul", Destination: "Seoul"})
	require.ErrorIs(t, err, entity.ErrInvalidRoute)
}
