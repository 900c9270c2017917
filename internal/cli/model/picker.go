// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/bnema/tripbook/internal/ui/component"
	"github.com/bnema/tripbook/internal/ui/mainloop"
)

const renderKey = "render"

// PickerOptions configures a PickerModel.
type PickerOptions struct {
	Category   entity.Category
	Value      string
	Search     port.SearchProvider
	Recent     port.RecentItems
	Favorites  []entity.SearchResult
	DebounceMs int
	MaxResults int

	// LoadFavorites, when set, is run once in the background and its
	// result replaces Favorites.
	LoadFavorites func(ctx context.Context) ([]entity.SearchResult, error)

	// Forget removes a value from the category's recent list.
	Forget func(value string)
}

// pickerShared is the part of the model that controller callbacks write to.
type pickerShared struct {
	view      component.View
	chosen    *entity.SearchResult
	text      string
	cancelled bool
}

// loopMsg tells Update that the controller loop has queued work.
type loopMsg struct{}

// PickerModel is the Bubble Tea model for an interactive category picker.
// The search controller lives on a mainloop.Loop that is drained from
// Update, so every controller call happens on Bubble Tea's update goroutine.
type PickerModel struct {
	// UI components
	input   textinput.Model
	help    help.Model
	keys    styles.PickerKeyMap
	loading styles.Indicator

	// State
	shared   *pickerShared
	showHelp bool
	width    int

	// Dependencies
	ctx       context.Context
	loop      *mainloop.Loop
	coalescer *mainloop.Coalescer
	ctrl      *component.SearchController
	forget    func(string)
	favorites func(context.Context) ([]entity.SearchResult, error)
	category  entity.Category
	theme     *styles.Theme
	renderer  *styles.ResultsRenderer
}

// NewPickerModel creates a picker bound to a fresh search controller.
func NewPickerModel(ctx context.Context, theme *styles.Theme, opts PickerOptions) PickerModel {
	log := logging.FromContext(ctx)
	log.Debug().Str("category", string(opts.Category)).Msg("creating picker model")

	loop := mainloop.New()
	coalescer := mainloop.NewCoalescer(loop)
	shared := &pickerShared{text: opts.Value}

	var ctrl *component.SearchController
	ctrl = component.Bind(component.BindOptions{
		Context:    ctx,
		Value:      opts.Value,
		Search:     opts.Search,
		Recent:     opts.Recent,
		Favorites:  opts.Favorites,
		Category:   opts.Category,
		DebounceMs: opts.DebounceMs,
		MaxResults: opts.MaxResults,
		Dispatcher: loop,
		OnChange: func(value string) {
			shared.text = value
		},
		OnSelect: func(result entity.SearchResult) {
			shared.chosen = &result
		},
		OnRender: func(component.View) {
			coalescer.Post(renderKey, func() {
				shared.view = ctrl.Snapshot()
			})
		},
	})

	input := styles.NewSearchInput(theme, opts.Category)
	input.SetValue(opts.Value)
	input.Focus()

	return PickerModel{
		input:     input,
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultPickerKeyMap(),
		loading:   styles.NewSearchIndicator(theme, opts.Category),
		shared:    shared,
		width:     80,
		ctx:       ctx,
		loop:      loop,
		coalescer: coalescer,
		ctrl:      ctrl,
		forget:    opts.Forget,
		favorites: opts.LoadFavorites,
		category:  opts.Category,
		theme:     theme,
		renderer:  styles.NewResultsRenderer(theme),
	}
}

// Chosen returns the committed value. ok is false when the picker was
// cancelled.
func (m PickerModel) Chosen() (value string, ok bool) {
	if m.shared.cancelled {
		return "", false
	}
	if m.shared.chosen != nil {
		return m.shared.chosen.Value, true
	}
	text := strings.TrimSpace(m.shared.text)
	return text, text != ""
}

// SetDebounce changes the lookup delay. It is safe to call from any
// goroutine.
func (m PickerModel) SetDebounce(ms int) {
	m.loop.Post(func() {
		m.ctrl.SetDebounce(ms)
	})
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	m.ctrl.Focus()
	m.loop.Drain()
	if m.favorites != nil {
		go m.loadFavorites()
	}
	return tea.Batch(
		textinput.Blink,
		m.loading.Spinner.Tick,
		m.waitForLoop,
	)
}

// loadFavorites hands the catalog favorites to the controller. They show up
// with the next lookup.
func (m PickerModel) loadFavorites() {
	favorites, err := m.favorites(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("favorites unavailable")
		return
	}
	m.loop.Post(func() {
		m.ctrl.SetFavorites(favorites)
	})
}

// waitForLoop blocks until the controller loop has work.
func (m PickerModel) waitForLoop() tea.Msg {
	select {
	case <-m.loop.Notify():
		return loopMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case loopMsg:
		cmds = append(cmds, m.waitForLoop)

	case tea.KeyMsg:
		model, cmd, done := m.handleKeyMsg(msg)
		if done {
			return model, cmd
		}
		m = model
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		cmds = append(cmds, cmd)
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		cmds = append(cmds, inputCmd)
	}

	m.loop.Drain()
	return m, tea.Batch(cmds...)
}

func (m PickerModel) handleKeyMsg(msg tea.KeyMsg) (PickerModel, tea.Cmd, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit(true)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil, false

	case key.Matches(msg, m.keys.Cancel):
		if !m.ctrl.Key(component.KeyEscape) {
			return m.quit(true)
		}
		return m, nil, false

	case key.Matches(msg, m.keys.Up):
		m.ctrl.Key(component.KeyArrowUp)
		return m, nil, false

	case key.Matches(msg, m.keys.Down):
		m.ctrl.Key(component.KeyArrowDown)
		return m, nil, false

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.Toggle()
		return m, nil, false

	case key.Matches(msg, m.keys.Forget):
		m.forgetSelected()
		return m, nil, false

	case key.Matches(msg, m.keys.Select):
		m.ctrl.Key(component.KeyEnter)
		m.loop.Drain()
		return m.quit(false)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.ctrl.Input(m.input.Value())
	}
	return m, cmd, false
}

// forgetSelected drops the highlighted recent value and refreshes the list.
func (m PickerModel) forgetSelected() {
	if m.forget == nil {
		return
	}
	selected, ok := m.ctrl.Snapshot().SelectedResult()
	if !ok || selected.Kind != entity.KindRecent {
		return
	}
	m.forget(selected.Value)
	m.ctrl.Input(m.input.Value())
}

func (m PickerModel) quit(cancelled bool) (PickerModel, tea.Cmd, bool) {
	m.shared.cancelled = cancelled
	m.ctrl.Close()
	m.coalescer.Destroy()
	m.loop.Stop()
	return m, tea.Quit, true
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme
	view := m.shared.view

	header := t.Title.Render("Pick " + string(m.category))
	input := t.InputBox(m.input.View(), true)

	var body string
	switch view.State {
	case component.StateOpenLoading:
		body = m.loading.View()
	case component.StateOpenIdle:
		body = m.renderer.RenderList(view.Results, view.Selected, view.Empty)
	default:
		body = t.Subtle.Render("  tab or ↓ to show suggestions")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		input,
		body,
		"",
		m.help.View(m.keys),
	)
}
