package component_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/ui/component"
)

type controllerHarness struct {
	ctrl       *component.SearchController
	dispatcher *fakeDispatcher
	provider   *scriptedProvider
	recents    *memoryRecents
	renders    []component.View
	changes    []string
	selected   []entity.SearchResult
}

func newHarness(t *testing.T, favorites ...entity.SearchResult) *controllerHarness {
	t.Helper()
	h := &controllerHarness{
		dispatcher: newFakeDispatcher(),
		provider:   newScriptedProvider(),
		recents:    newMemoryRecents(),
	}
	h.ctrl = component.Bind(component.BindOptions{
		Context:    testContext(),
		OnChange:   func(v string) { h.changes = append(h.changes, v) },
		OnSelect:   func(r entity.SearchResult) { h.selected = append(h.selected, r) },
		Search:     h.provider,
		Recent:     h.recents,
		Favorites:  favorites,
		Category:   entity.CategoryVehicle,
		Dispatcher: h.dispatcher,
		OnRender:   func(v component.View) { h.renders = append(h.renders, v) },
	})
	t.Cleanup(h.ctrl.Close)
	return h
}

// openWith types query and resolves the resulting lookup with results.
func (h *controllerHarness) openWith(t *testing.T, query string, results ...entity.SearchResult) {
	t.Helper()
	h.ctrl.Input(query)
	require.Equal(t, 1, h.dispatcher.fireTimers())
	h.provider.next(t).respond(results...)
	h.dispatcher.runNext(t)
	require.Equal(t, component.StateOpenIdle, h.ctrl.Snapshot().State)
}

func TestBind_StartsClosedWithValue(t *testing.T) {
	d := newFakeDispatcher()
	ctrl := component.Bind(component.BindOptions{Value: "12가3456", Dispatcher: d})

	view := ctrl.Snapshot()
	assert.Equal(t, component.StateClosed, view.State)
	assert.Equal(t, "12가3456", view.Query)
	assert.Equal(t, -1, view.Selected)
	assert.Equal(t, entity.CategoryGeneral, ctrl.Category())
	assert.Zero(t, d.pendingTimers())
}

func TestBind_PanicsWithoutDispatcher(t *testing.T) {
	assert.Panics(t, func() {
		component.Bind(component.BindOptions{})
	})
}

func TestSearchController_DebounceUsesConfiguredDelay(t *testing.T) {
	d := newFakeDispatcher()
	ctrl := component.Bind(component.BindOptions{Dispatcher: d, DebounceMs: 120})
	ctrl.Focus()

	require.NotNil(t, d.lastTimer())
	assert.Equal(t, 120*time.Millisecond, d.lastTimer().delay)

	d2 := newFakeDispatcher()
	component.Bind(component.BindOptions{Dispatcher: d2}).Focus()
	assert.Equal(t, 300*time.Millisecond, d2.lastTimer().delay)
}

func TestSearchController_SetDebounceAppliesToNextTimer(t *testing.T) {
	d := newFakeDispatcher()
	ctrl := component.Bind(component.BindOptions{Dispatcher: d, DebounceMs: 120})

	ctrl.SetDebounce(40)
	ctrl.Focus()
	assert.Equal(t, 40*time.Millisecond, d.lastTimer().delay)

	ctrl.SetDebounce(0)
	ctrl.Input("1")
	assert.Equal(t, 300*time.Millisecond, d.lastTimer().delay)
}

func TestSearchController_SetFavoritesShowsOnNextLookup(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetFavorites([]entity.SearchResult{result(entity.KindFavorite, "11가1111")})

	h.ctrl.Focus()
	require.Equal(t, 1, h.dispatcher.fireTimers())

	view := h.ctrl.Snapshot()
	assert.Equal(t, []string{"11가1111"}, values(view.Results))
}

func TestSearchController_FocusWithEmptyQueryShowsFavoritesWithoutProvider(t *testing.T) {
	favs := []entity.SearchResult{
		result(entity.KindFavorite, "11가1111"),
		result(entity.KindFavorite, "22나2222"),
		result(entity.KindFavorite, "33다3333"),
	}
	h := newHarness(t, favs...)

	h.ctrl.Focus()
	assert.Equal(t, component.StateOpenLoading, h.ctrl.Snapshot().State)

	require.Equal(t, 1, h.dispatcher.fireTimers())
	h.provider.assertNoRequest(t)

	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateOpenIdle, view.State)
	require.Len(t, view.Results, 3)
	assert.Equal(t, []string{"11가1111", "22나2222", "33다3333"}, values(view.Results))
	for _, r := range view.Results {
		assert.Equal(t, entity.KindFavorite, r.Kind)
	}
}

func TestSearchController_EmptyQueryListsRecentBeforeFavorites(t *testing.T) {
	h := newHarness(t, result(entity.KindFavorite, "A"), result(entity.KindFavorite, "B"))
	h.recents.Add(testContext(), entity.CategoryVehicle, "B")

	h.ctrl.Focus()
	h.dispatcher.fireTimers()

	view := h.ctrl.Snapshot()
	assert.Equal(t, []string{"B", "A"}, values(view.Results))
	assert.Equal(t, entity.KindRecent, view.Results[0].Kind)
}

func TestSearchController_RecentAndFavoritePlateCollapsesToRecent(t *testing.T) {
	plate := "12가3456"
	h := newHarness(t, result(entity.KindFavorite, plate))
	h.recents.Add(testContext(), entity.CategoryVehicle, plate)

	h.openWith(t, "12", result(entity.KindFavorite, plate), result(entity.KindSearch, plate))

	view := h.ctrl.Snapshot()
	require.Len(t, view.Results, 1)
	assert.Equal(t, entity.KindRecent, view.Results[0].Kind)
	assert.Equal(t, plate, view.Results[0].Value)
}

func TestSearchController_DebounceCollapsesKeystrokes(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Input("1")
	h.ctrl.Input("12")
	h.ctrl.Input("12가")

	assert.Equal(t, 1, h.dispatcher.pendingTimers())
	assert.Equal(t, []string{"1", "12", "12가"}, h.changes)

	h.dispatcher.fireTimers()
	req := h.provider.next(t)
	assert.Equal(t, "12가", req.query)
	assert.Equal(t, entity.CategoryVehicle, req.category)
	h.provider.assertNoRequest(t)

	req.respond()
	h.dispatcher.runNext(t)
}

func TestSearchController_StaleResponseIsDiscarded(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Input("1")
	h.dispatcher.fireTimers()
	reqA := h.provider.next(t)

	h.ctrl.Input("12")
	assert.Equal(t, component.StateOpenLoading, h.ctrl.Snapshot().State)
	h.dispatcher.fireTimers()
	reqB := h.provider.next(t)

	// B arrives first, A last
	reqB.respond(result(entity.KindSearch, "12가3456"))
	h.dispatcher.runNext(t)
	reqA.respond(result(entity.KindSearch, "1나0000"), result(entity.KindSearch, "12가3456"))
	h.dispatcher.runNext(t)

	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateOpenIdle, view.State)
	assert.Equal(t, []string{"12가3456"}, values(view.Results))
}

func TestSearchController_ArrowKeysClampSelection(t *testing.T) {
	h := newHarness(t)
	h.openWith(t, "x",
		result(entity.KindSearch, "x1"),
		result(entity.KindSearch, "x2"),
		result(entity.KindSearch, "x3"),
	)
	assert.Equal(t, -1, h.ctrl.Snapshot().Selected)

	for range 5 {
		assert.True(t, h.ctrl.Key(component.KeyArrowDown))
	}
	assert.Equal(t, 2, h.ctrl.Snapshot().Selected)

	for range 5 {
		h.ctrl.Key(component.KeyArrowUp)
	}
	assert.Equal(t, -1, h.ctrl.Snapshot().Selected)

	assert.False(t, h.ctrl.Key(component.KeyEnter), "enter with no selection is a no-op")
	assert.True(t, h.ctrl.Snapshot().State.IsOpen())
	assert.Empty(t, h.selected)
}

func TestSearchController_ArrowDownOnEmptyListKeepsNoSelection(t *testing.T) {
	h := newHarness(t)
	h.openWith(t, "zzz")

	h.ctrl.Key(component.KeyArrowDown)
	view := h.ctrl.Snapshot()
	assert.Equal(t, -1, view.Selected)
	assert.Equal(t, suggest.EmptyNoMatches, view.Empty)
}

func TestSearchController_EnterCommitsSelection(t *testing.T) {
	h := newHarness(t)
	vehicle := result(entity.KindSearch, "34나7890")
	vehicle.Metadata = map[string]string{entity.MetaVehicleID: "7"}
	h.openWith(t, "34", result(entity.KindExact, "34"), vehicle)

	h.ctrl.Key(component.KeyArrowDown)
	h.ctrl.Key(component.KeyArrowDown)
	require.True(t, h.ctrl.Key(component.KeyEnter))

	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateClosed, view.State)
	assert.Equal(t, "34나7890", view.Query)
	assert.Equal(t, "34나7890", h.changes[len(h.changes)-1])
	require.Len(t, h.selected, 1)
	assert.Equal(t, "7", h.selected[0].Meta(entity.MetaVehicleID))
	assert.Equal(t, []string{"34나7890"}, h.recents.Get(testContext(), entity.CategoryVehicle))
}

func TestSearchController_SelectIndexCommits(t *testing.T) {
	h := newHarness(t)
	h.openWith(t, "b", result(entity.KindSearch, "b1"), result(entity.KindSearch, "b2"))

	h.ctrl.SelectIndex(5)
	assert.True(t, h.ctrl.Snapshot().State.IsOpen())

	h.ctrl.SelectIndex(1)
	assert.Equal(t, component.StateClosed, h.ctrl.Snapshot().State)
	require.Len(t, h.selected, 1)
	assert.Equal(t, "b2", h.selected[0].Value)
}

func TestSearchController_EscapeClosesWithoutCommit(t *testing.T) {
	h := newHarness(t)
	h.openWith(t, "q", result(entity.KindSearch, "q1"))
	h.ctrl.Key(component.KeyArrowDown)

	require.True(t, h.ctrl.Key(component.KeyEscape))

	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateClosed, view.State)
	assert.Equal(t, -1, view.Selected)
	assert.Empty(t, view.Results)
	assert.Equal(t, "q", view.Query)
	assert.Empty(t, h.selected)
	assert.Empty(t, h.recents.Get(testContext(), entity.CategoryVehicle))

	assert.False(t, h.ctrl.Key(component.KeyEscape), "escape while closed is not consumed")
}

func TestSearchController_DismissDropsInFlightResponse(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Input("late")
	h.dispatcher.fireTimers()
	req := h.provider.next(t)

	h.ctrl.Dismiss()
	req.respond(result(entity.KindSearch, "late-result"))
	h.dispatcher.runNext(t)

	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateClosed, view.State)
	assert.Empty(t, view.Results)
}

func TestSearchController_DismissCancelsPendingTimer(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Input("abc")
	h.ctrl.Dismiss()

	assert.Zero(t, h.dispatcher.pendingTimers())
	assert.Zero(t, h.dispatcher.fireTimers())
	h.provider.assertNoRequest(t)
}

func TestSearchController_ReopenResetsSelection(t *testing.T) {
	h := newHarness(t)
	h.openWith(t, "r", result(entity.KindSearch, "r1"), result(entity.KindSearch, "r2"))
	h.ctrl.Key(component.KeyArrowDown)
	h.ctrl.Key(component.KeyArrowDown)

	h.ctrl.Toggle()
	assert.Equal(t, component.StateClosed, h.ctrl.Snapshot().State)

	h.ctrl.Toggle()
	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateOpenLoading, view.State)
	assert.Equal(t, -1, view.Selected)
}

func TestSearchController_ArrowDownOpensClosedList(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.ctrl.Key(component.KeyArrowDown))
	assert.Equal(t, component.StateOpenLoading, h.ctrl.Snapshot().State)
	assert.False(t, component.Bind(component.BindOptions{Dispatcher: newFakeDispatcher()}).Key(component.KeyArrowUp))
}

func TestSearchController_ProviderErrorStillShowsRecent(t *testing.T) {
	h := newHarness(t)
	h.recents.Add(testContext(), entity.CategoryVehicle, "12가3456")

	h.ctrl.Input("12")
	h.dispatcher.fireTimers()
	h.provider.next(t).fail(errors.New("network down"))
	h.dispatcher.runNext(t)

	view := h.ctrl.Snapshot()
	assert.Equal(t, component.StateOpenIdle, view.State)
	require.Len(t, view.Results, 1)
	assert.Equal(t, entity.KindRecent, view.Results[0].Kind)
}

func TestSearchController_EmptyStates(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Focus()
	assert.Equal(t, suggest.EmptyNone, h.ctrl.Snapshot().Empty, "loading is not an empty state")

	h.dispatcher.fireTimers()
	assert.Equal(t, suggest.EmptyTypeToSearch, h.ctrl.Snapshot().Empty)

	h.ctrl.Input("nothing")
	h.dispatcher.fireTimers()
	h.provider.next(t).respond()
	h.dispatcher.runNext(t)
	assert.Equal(t, suggest.EmptyNoMatches, h.ctrl.Snapshot().Empty)
}

func TestSearchController_CapsResults(t *testing.T) {
	d := newFakeDispatcher()
	p := newScriptedProvider()
	ctrl := component.Bind(component.BindOptions{Dispatcher: d, Search: p, MaxResults: 2})

	ctrl.Input("a")
	d.fireTimers()
	p.next(t).respond(
		result(entity.KindSearch, "a1"),
		result(entity.KindSearch, "a2"),
		result(entity.KindSearch, "a3"),
	)
	d.runNext(t)

	assert.Len(t, ctrl.Snapshot().Results, 2)
}

func TestSearchController_RendersOnTransitions(t *testing.T) {
	h := newHarness(t)
	h.openWith(t, "x", result(entity.KindSearch, "x1"))
	h.ctrl.Key(component.KeyArrowDown)

	states := make([]component.State, len(h.renders))
	for i, v := range h.renders {
		states[i] = v.State
	}
	assert.Equal(t, []component.State{
		component.StateOpenLoading,
		component.StateOpenIdle,
		component.StateOpenIdle,
	}, states)
	assert.Equal(t, 0, h.renders[len(h.renders)-1].Selected)
}

func TestSearchController_CloseTearsDown(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Input("a")
	h.dispatcher.fireTimers()
	req := h.provider.next(t)

	h.ctrl.Input("ab")
	require.Equal(t, 1, h.dispatcher.pendingTimers())

	h.ctrl.Close()
	assert.Zero(t, h.dispatcher.pendingTimers())

	rendersBefore := len(h.renders)
	req.respond(result(entity.KindSearch, "ab1"))
	h.dispatcher.runNext(t)

	h.ctrl.Input("abc")
	h.ctrl.Focus()
	assert.Zero(t, h.dispatcher.pendingTimers())
	assert.Len(t, h.renders, rendersBefore)
	assert.Equal(t, component.StateClosed, h.ctrl.Snapshot().State)
}
