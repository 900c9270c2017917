// Package component provides input controllers for trip forms.
package component

import (
	"context"
	"strings"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
	"github.com/bnema/tripbook/internal/logging"
)

const defaultSearchDebounceMs = 300

// State is the open/closed state of a search controller.
type State int

const (
	StateClosed State = iota
	StateOpenLoading
	StateOpenIdle
)

func (s State) String() string {
	switch s {
	case StateOpenLoading:
		return "open-loading"
	case StateOpenIdle:
		return "open-idle"
	default:
		return "closed"
	}
}

// IsOpen reports whether the suggestion list is visible.
func (s State) IsOpen() bool {
	return s != StateClosed
}

// Key is a navigation key forwarded by the host input.
type Key int

const (
	KeyArrowDown Key = iota + 1
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// View is a render snapshot of a controller.
type View struct {
	State    State
	Query    string
	Results  []entity.SearchResult
	Selected int
	Empty    suggest.EmptyState
}

// SelectedResult returns the highlighted result, if any.
func (v View) SelectedResult() (entity.SearchResult, bool) {
	if v.Selected < 0 || v.Selected >= len(v.Results) {
		return entity.SearchResult{}, false
	}
	return v.Results[v.Selected], true
}

// BindOptions configures a SearchController.
type BindOptions struct {
	// Context carries the logger and is passed to lookups.
	Context context.Context

	Value    string
	OnChange func(value string)
	OnSelect func(result entity.SearchResult)

	Search    port.SearchProvider
	Recent    port.RecentItems
	Favorites []entity.SearchResult

	Category   entity.Category
	DebounceMs int
	MaxResults int

	Dispatcher port.Dispatcher
	OnRender   func(View)
}

// SearchController drives the suggestion list of one bound input.
//
// Every method must be called from the dispatcher's thread. Lookups run on
// their own goroutine and report back through Dispatcher.Post; a response is
// applied only when it belongs to the most recently issued lookup.
type SearchController struct {
	ctx        context.Context
	category   entity.Category
	search     port.SearchProvider
	recent     port.RecentItems
	favorites  []entity.SearchResult
	debounce   time.Duration
	maxResults int
	dispatcher port.Dispatcher

	onChange func(string)
	onSelect func(entity.SearchResult)
	onRender func(View)

	state        State
	query        string
	results      []entity.SearchResult
	selected     int
	timer        port.Timer
	latestIssued uint64
	destroyed    bool
}

// Bind creates a closed controller for an input holding opts.Value.
func Bind(opts BindOptions) *SearchController {
	if opts.Dispatcher == nil {
		panic("component.Bind: dispatcher cannot be nil")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	category := opts.Category
	if category == "" {
		category = entity.CategoryGeneral
	}
	ctx = logging.WithCategory(logging.WithComponent(ctx, "search-controller"), string(category))

	debounceMs := opts.DebounceMs
	if debounceMs <= 0 {
		debounceMs = defaultSearchDebounceMs
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = suggest.DefaultMaxResults
	}

	return &SearchController{
		ctx:        ctx,
		category:   category,
		search:     opts.Search,
		recent:     opts.Recent,
		favorites:  opts.Favorites,
		debounce:   time.Duration(debounceMs) * time.Millisecond,
		maxResults: maxResults,
		dispatcher: opts.Dispatcher,
		onChange:   opts.OnChange,
		onSelect:   opts.OnSelect,
		onRender:   opts.OnRender,
		query:      opts.Value,
		selected:   -1,
	}
}

// Value returns the current text of the bound input.
func (c *SearchController) Value() string {
	return c.query
}

// Category returns the category the controller searches in.
func (c *SearchController) Category() entity.Category {
	return c.category
}

// Snapshot returns the state to render.
func (c *SearchController) Snapshot() View {
	results := make([]entity.SearchResult, len(c.results))
	copy(results, c.results)

	empty := suggest.EmptyNone
	if c.state == StateOpenIdle {
		empty = suggest.EmptyStateFor(c.query, c.results)
	}
	return View{
		State:    c.state,
		Query:    c.query,
		Results:  results,
		Selected: c.selected,
		Empty:    empty,
	}
}

// SetFavorites replaces the favorite items shown alongside lookups. The
// visible list picks them up on the next lookup.
func (c *SearchController) SetFavorites(favorites []entity.SearchResult) {
	c.favorites = favorites
}

// SetDebounce changes the delay before a lookup. A pending timer keeps its
// old delay; ms <= 0 restores the default.
func (c *SearchController) SetDebounce(ms int) {
	if ms <= 0 {
		ms = defaultSearchDebounceMs
	}
	c.debounce = time.Duration(ms) * time.Millisecond
}

// SetValue updates the input text from the host without opening the list.
func (c *SearchController) SetValue(value string) {
	if c.destroyed {
		return
	}
	c.query = value
}

// Focus opens the list if it is closed.
func (c *SearchController) Focus() {
	if c.destroyed || c.state.IsOpen() {
		return
	}
	c.open()
}

// Toggle opens a closed list or dismisses an open one.
func (c *SearchController) Toggle() {
	if c.destroyed {
		return
	}
	if c.state.IsOpen() {
		c.Dismiss()
		return
	}
	c.open()
}

// Input records a keystroke that changed the input text to text.
func (c *SearchController) Input(text string) {
	if c.destroyed {
		return
	}

	c.query = text
	if c.onChange != nil {
		c.onChange(text)
	}

	if !c.state.IsOpen() {
		c.open()
		return
	}

	c.state = StateOpenLoading
	c.schedule()
	c.render()
}

// Key handles a navigation key and reports whether it was consumed.
func (c *SearchController) Key(key Key) bool {
	if c.destroyed {
		return false
	}

	switch key {
	case KeyArrowDown:
		if !c.state.IsOpen() {
			c.open()
			return true
		}
		c.moveSelection(1)
		return true

	case KeyArrowUp:
		if !c.state.IsOpen() {
			return false
		}
		c.moveSelection(-1)
		return true

	case KeyEnter:
		if !c.state.IsOpen() || c.selected < 0 || c.selected >= len(c.results) {
			return false
		}
		c.commit(c.results[c.selected])
		return true

	case KeyEscape:
		if !c.state.IsOpen() {
			return false
		}
		c.Dismiss()
		return true
	}
	return false
}

// SelectIndex commits the result at index, as a click on a row would.
// Out of range indices are ignored.
func (c *SearchController) SelectIndex(index int) {
	if c.destroyed || !c.state.IsOpen() || index < 0 || index >= len(c.results) {
		return
	}
	c.commit(c.results[index])
}

// Dismiss closes the list without committing. Lookups still in flight are
// discarded when they arrive.
func (c *SearchController) Dismiss() {
	if c.destroyed || !c.state.IsOpen() {
		return
	}

	c.stopTimer()
	c.latestIssued++
	c.state = StateClosed
	c.results = nil
	c.selected = -1
	c.render()
}

// Close tears the controller down. Pending timers are stopped and any late
// lookup response is dropped.
func (c *SearchController) Close() {
	if c.destroyed {
		return
	}

	c.stopTimer()
	c.latestIssued++
	c.destroyed = true
	c.state = StateClosed
	c.results = nil
	c.selected = -1

	logging.FromContext(c.ctx).Debug().Msg("search controller closed")
}

func (c *SearchController) open() {
	c.state = StateOpenLoading
	c.selected = -1
	c.schedule()
	c.render()
}

func (c *SearchController) schedule() {
	c.stopTimer()
	c.timer = c.dispatcher.AfterFunc(c.debounce, c.fire)
}

func (c *SearchController) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *SearchController) fire() {
	c.timer = nil
	if c.destroyed || !c.state.IsOpen() {
		return
	}

	c.latestIssued++
	seq := c.latestIssued
	query := c.query

	if strings.TrimSpace(query) == "" || c.search == nil {
		c.apply(seq, query, nil)
		return
	}

	ctx := c.ctx
	search := c.search
	category := c.category
	go func() {
		results, err := search.Search(ctx, category, query)
		if err != nil {
			logging.FromContext(ctx).Warn().
				Err(err).
				Str("query", query).
				Msg("search provider failed")
			results = nil
		}
		c.dispatcher.Post(func() {
			c.apply(seq, query, results)
		})
	}()
}

func (c *SearchController) apply(seq uint64, query string, provided []entity.SearchResult) {
	if c.destroyed || !c.state.IsOpen() || seq != c.latestIssued {
		logging.FromContext(c.ctx).Trace().
			Uint64("seq", seq).
			Uint64("latest", c.latestIssued).
			Msg("discarding stale lookup")
		return
	}

	var recents []entity.SearchResult
	if c.recent != nil {
		recents = suggest.RecentResults(c.category, c.recent.Get(c.ctx, c.category), query)
	}
	favorites := suggest.FilterFavorites(c.favorites, query)

	if strings.TrimSpace(query) == "" {
		provided = nil
	}

	c.results = suggest.Limit(suggest.Merge(recents, favorites, provided), c.maxResults)
	c.selected = -1
	c.state = StateOpenIdle
	c.render()
}

func (c *SearchController) moveSelection(delta int) {
	next := c.selected + delta
	if next > len(c.results)-1 {
		next = len(c.results) - 1
	}
	if next < -1 {
		next = -1
	}
	if next == c.selected {
		return
	}
	c.selected = next
	c.render()
}

func (c *SearchController) commit(result entity.SearchResult) {
	c.query = result.Value
	if c.onChange != nil {
		c.onChange(result.Value)
	}
	if c.onSelect != nil {
		c.onSelect(result)
	}
	if c.recent != nil {
		c.recent.Add(c.ctx, c.category, result.Value)
	}

	logging.FromContext(c.ctx).Debug().
		Str("value", result.Value).
		Str("kind", string(result.Kind)).
		Msg("search result committed")

	c.Dismiss()
}

func (c *SearchController) render() {
	if c.onRender != nil {
		c.onRender(c.Snapshot())
	}
}
