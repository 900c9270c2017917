package model

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/bnema/tripbook/internal/ui/component"
)

type memoryRecents struct {
	mu    sync.Mutex
	items []string
}

func (r *memoryRecents) Add(_ context.Context, _ entity.Category, item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]string{item}, r.items...)
}

func (r *memoryRecents) Get(context.Context, entity.Category) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.items...)
}

func (r *memoryRecents) remove(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items[:0]
	for _, it := range r.items {
		if it != item {
			out = append(out, it)
		}
	}
	r.items = out
}

func locationSearch() port.SearchProvider {
	return port.SearchFunc(func(_ context.Context, category entity.Category, query string) ([]entity.SearchResult, error) {
		var out []entity.SearchResult
		for _, name := range []string{"Busan", "Bucheon", "Seoul"} {
			if query != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
				continue
			}
			out = append(out, entity.SearchResult{Value: name, Kind: entity.KindSearch, Category: category})
		}
		return out, nil
	})
}

func newTestPicker(t *testing.T, recents *memoryRecents) PickerModel {
	t.Helper()
	ctx, cancel := context.WithCancel(logging.WithContext(
		context.Background(), logging.NewFromConfigValues("disabled", "console")))
	t.Cleanup(cancel)

	return NewPickerModel(ctx, styles.NewTheme(), PickerOptions{
		Category:   entity.CategoryLocation,
		Search:     locationSearch(),
		Recent:     recents,
		DebounceMs: 1,
		Forget:     recents.remove,
	})
}

// settle drains the controller loop until the list is open and idle.
func settle(t *testing.T, m PickerModel) PickerModel {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for m.shared.view.State != component.StateOpenIdle {
		select {
		case <-m.loop.Notify():
			next, _ := m.Update(loopMsg{})
			m = next.(PickerModel)
		case <-deadline:
			t.Fatalf("picker did not settle, state %s", m.shared.view.State)
		}
	}
	return m
}

func press(m PickerModel, msg tea.KeyMsg) PickerModel {
	next, _ := m.Update(msg)
	return next.(PickerModel)
}

func typeText(m PickerModel, text string) PickerModel {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestPicker_InitListsRecents(t *testing.T) {
	m := newTestPicker(t, &memoryRecents{items: []string{"Seoul"}})
	m.Init()
	m = settle(t, m)

	require.Len(t, m.shared.view.Results, 1)
	assert.Equal(t, "Seoul", m.shared.view.Results[0].Value)
	assert.Equal(t, entity.KindRecent, m.shared.view.Results[0].Kind)
}

func TestPicker_TypeSelectAndCommit(t *testing.T) {
	recents := &memoryRecents{}
	m := newTestPicker(t, recents)
	m.Init()
	m = settle(t, m)

	m = typeText(m, "bu")
	assert.Equal(t, component.StateOpenLoading, m.shared.view.State)
	m = settle(t, m)
	require.Len(t, m.shared.view.Results, 2)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.shared.view.Selected)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)
	require.NotNil(t, cmd)

	value, ok := m.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "Bucheon", value)
	assert.Equal(t, []string{"Bucheon"}, recents.Get(context.Background(), entity.CategoryLocation))
}

func TestPicker_EnterWithoutSelectionAcceptsTypedText(t *testing.T) {
	m := newTestPicker(t, &memoryRecents{})
	m.Init()
	m = settle(t, m)

	m = typeText(m, "Daegu")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)

	value, ok := m.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "Daegu", value)
}

func TestPicker_EscapeClosesListThenCancels(t *testing.T) {
	m := newTestPicker(t, &memoryRecents{})
	m.Init()
	m = settle(t, m)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, component.StateClosed, m.shared.view.State)
	assert.False(t, m.shared.cancelled)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestPicker_ForgetRemovesHighlightedRecent(t *testing.T) {
	recents := &memoryRecents{items: []string{"Seoul", "Busan"}}
	m := newTestPicker(t, recents)
	m.Init()
	m = settle(t, m)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m = settle(t, m)

	assert.Equal(t, []string{"Busan"}, recents.Get(context.Background(), entity.CategoryLocation))
	require.Len(t, m.shared.view.Results, 1)
	assert.Equal(t, "Busan", m.shared.view.Results[0].Value)
}

func TestPicker_ViewRendersResults(t *testing.T) {
	m := newTestPicker(t, &memoryRecents{items: []string{"Seoul"}})
	m.Init()
	m = settle(t, m)

	out := m.View()
	assert.Contains(t, out, "Pick location")
	assert.Contains(t, out, "Seoul")
}

func TestPicker_LoadedFavoritesShowOnNextLookup(t *testing.T) {
	release := make(chan struct{})
	ctx, cancel := context.WithCancel(logging.WithContext(
		context.Background(), logging.NewFromConfigValues("disabled", "console")))
	t.Cleanup(cancel)

	m := NewPickerModel(ctx, styles.NewTheme(), PickerOptions{
		Category:   entity.CategoryLocation,
		Recent:     &memoryRecents{},
		DebounceMs: 1,
		LoadFavorites: func(context.Context) ([]entity.SearchResult, error) {
			<-release
			return []entity.SearchResult{{Value: "Daegu", Kind: entity.KindFavorite, Category: entity.CategoryLocation}}, nil
		},
	})
	m.Init()
	m = settle(t, m)
	assert.Empty(t, m.shared.view.Results)

	close(release)
	deadline := time.Now().Add(2 * time.Second)
	for len(m.shared.view.Results) == 0 {
		require.True(t, time.Now().Before(deadline), "favorites never arrived")
		time.Sleep(5 * time.Millisecond)
		m = press(m, tea.KeyMsg{Type: tea.KeyTab})
		m = press(m, tea.KeyMsg{Type: tea.KeyTab})
		m = settle(t, m)
	}
	assert.Equal(t, "Daegu", m.shared.view.Results[0].Value)
	assert.Equal(t, entity.KindFavorite, m.shared.view.Results[0].Kind)
}

func TestPicker_SetDebounceAppliesToLaterKeystrokes(t *testing.T) {
	m := newTestPicker(t, &memoryRecents{})
	m.Init()
	m = settle(t, m)

	m.SetDebounce(60_000)
	next, _ := m.Update(loopMsg{})
	m = next.(PickerModel)
	m = typeText(m, "bu")

	time.Sleep(30 * time.Millisecond)
	next, _ = m.Update(loopMsg{})
	m = next.(PickerModel)
	assert.Equal(t, component.StateOpenLoading, m.shared.view.State)
}
