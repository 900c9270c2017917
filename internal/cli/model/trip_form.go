package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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

type formField int

const (
	fieldVehicle formField = iota
	fieldDriver
	fieldOrigin
	fieldDestination
	fieldQuantity
	fieldPrice
	fieldCount
)

// searchFieldCount is the number of leading fields backed by a search
// controller.
const searchFieldCount = int(fieldQuantity)

var searchFields = [searchFieldCount]struct {
	label    string
	category entity.Category
}{
	fieldVehicle:     {"Vehicle", entity.CategoryVehicle},
	fieldDriver:      {"Driver", entity.CategoryDriver},
	fieldOrigin:      {"From", entity.CategoryLocation},
	fieldDestination: {"To", entity.CategoryLocation},
}

func (f formField) searchable() bool {
	return f >= 0 && int(f) < searchFieldCount
}

var errNoPrice = errors.New("no price history for route; enter a unit price")

// TripFormOptions configures a TripFormModel.
type TripFormOptions struct {
	Search      port.SearchProvider
	Recent      port.RecentItems
	Prices      port.RoutePriceLookup
	Eligibility component.EligibilityPolicy

	SearchDebounceMs  int
	SuggestDebounceMs int
	MaxResults        int

	// LoadFavorites, when set, is run in the background once per category.
	LoadFavorites func(ctx context.Context, category entity.Category) ([]entity.SearchResult, error)

	// Record stores a finished trip.
	Record func(ctx context.Context, trip *entity.Trip) error
}

// formCore is the state shared by every copy of the model. Controller and
// suggester callbacks write to it from the loop, which is only drained
// inside Update.
type formCore struct {
	ctrls     [searchFieldCount]*component.SearchController
	suggester *component.RoutePriceSuggester
	row       component.RowID
	rows      int

	values       [fieldCount]string
	pending      [fieldCount]bool
	views        [searchFieldCount]component.View
	vehiclePrice float64

	saving    bool
	status    string
	statusErr bool
	recorded  int
}

// setValue changes a field from a callback. Update copies it into the
// input afterwards.
func (c *formCore) setValue(f formField, value string) {
	if c.values[f] == value {
		return
	}
	c.values[f] = value
	c.pending[f] = true
}

func (c *formCore) fieldChanged(f formField, value string) {
	c.setValue(f, value)
	if f == fieldOrigin || f == fieldDestination {
		c.routeChanged()
	}
}

func (c *formCore) routeChanged() {
	c.suggester.OnOriginOrDestinationChange(c.row, c.values[fieldOrigin], c.values[fieldDestination])
}

// vehicleSelected seeds an untouched price with the vehicle's default.
func (c *formCore) vehicleSelected(result entity.SearchResult) {
	price, err := strconv.ParseFloat(result.Meta(entity.MetaDefaultUnitPrice), 64)
	if err != nil || price <= 0 {
		c.vehiclePrice = 0
		return
	}
	c.vehiclePrice = price

	state, _ := c.suggester.Row(c.row)
	if state.AutoLoaded || !c.suggester.Eligible(c.row) {
		return
	}
	c.suggester.AddRow(c.row, price)
	c.setValue(fieldPrice, styles.FormatPrice(price))
	c.routeChanged()
}

// priceTyped hands a keyboard edit of the price field to the suggester.
// Clearing the field gives the row back to suggestions.
func (c *formCore) priceTyped(text string) {
	c.values[fieldPrice] = text
	if strings.TrimSpace(text) == "" {
		c.suggester.ResetRow(c.row)
		c.routeChanged()
		return
	}
	price, err := strconv.ParseFloat(text, 64)
	if err != nil || price <= 0 {
		return
	}
	c.suggester.OnPriceEdited(c.row, price)
}

// newRow replaces the current row. Vehicle and driver carry over.
func (c *formCore) newRow() {
	if c.row != "" {
		c.suggester.RemoveRow(c.row)
	}
	c.rows++
	c.row = component.RowID(fmt.Sprintf("row-%d", c.rows))
	c.suggester.AddRow(c.row, c.vehiclePrice)

	for _, f := range []formField{fieldOrigin, fieldDestination} {
		c.ctrls[f].SetValue("")
		c.setValue(f, "")
	}
	c.setValue(fieldQuantity, "")
	price := ""
	if c.vehiclePrice > 0 {
		price = styles.FormatPrice(c.vehiclePrice)
	}
	c.setValue(fieldPrice, price)
}

// trip builds the row's trip. suggested reports whether the unit price came
// from route history.
func (c *formCore) trip() (trip *entity.Trip, suggested bool, err error) {
	quantity, err := strconv.ParseFloat(strings.TrimSpace(c.values[fieldQuantity]), 64)
	if err != nil || quantity <= 0 {
		return nil, false, errors.New("quantity must be a positive number")
	}

	state, _ := c.suggester.Row(c.row)
	priceText := strings.TrimSpace(c.values[fieldPrice])
	if priceText == "" {
		return nil, false, errNoPrice
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price <= 0 {
		return nil, false, errors.New("unit price must be a positive number")
	}

	trip = &entity.Trip{
		VehiclePlate: strings.TrimSpace(c.values[fieldVehicle]),
		DriverName:   strings.TrimSpace(c.values[fieldDriver]),
		Origin:       c.values[fieldOrigin],
		Destination:  c.values[fieldDestination],
		Quantity:     quantity,
		UnitPrice:    price,
	}
	if err := trip.Validate(); err != nil {
		return nil, false, err
	}
	return trip, state.AutoLoaded && state.Price == price, nil
}

func (c *formCore) setStatus(msg string, isErr bool) {
	c.status = msg
	c.statusErr = isErr
}

// tripRecordedMsg carries the outcome of a save.
type tripRecordedMsg struct {
	trip      *entity.Trip
	suggested bool
	err       error
}

// TripFormModel is the Bubble Tea model of the interactive trip form. Each
// text field searches its category, and the unit price follows the latest
// price recorded on the entered route until the user types one.
//
// Like PickerModel it owns a mainloop.Loop drained from Update, so search
// controllers and the price suggester only run on the update goroutine.
type TripFormModel struct {
	// UI components
	inputs    [fieldCount]textinput.Model
	help      help.Model
	keys      styles.TripFormKeyMap
	searching [searchFieldCount]styles.Indicator
	saving    styles.Indicator

	// State
	core     *formCore
	focus    formField
	showHelp bool
	width    int

	// Dependencies
	ctx       context.Context
	loop      *mainloop.Loop
	coalescer *mainloop.Coalescer
	record    func(context.Context, *entity.Trip) error
	favorites func(context.Context, entity.Category) ([]entity.SearchResult, error)
	theme     *styles.Theme
	results   *styles.ResultsRenderer
	trips     *styles.TripRenderer
}

// NewTripFormModel creates an empty form with one trip row.
func NewTripFormModel(ctx context.Context, theme *styles.Theme, opts TripFormOptions) TripFormModel {
	logging.FromContext(ctx).Debug().Msg("creating trip form model")

	loop := mainloop.New()
	coalescer := mainloop.NewCoalescer(loop)
	core := &formCore{}

	core.suggester = component.NewRoutePriceSuggester(component.SuggesterOptions{
		Context:     ctx,
		Lookup:      opts.Prices,
		Dispatcher:  loop,
		DebounceMs:  opts.SuggestDebounceMs,
		Eligibility: opts.Eligibility,
		OnApply: func(_ component.RowID, state component.RowPriceState) {
			core.setValue(fieldPrice, styles.FormatPrice(state.Price))
		},
	})

	m := TripFormModel{
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultTripFormKeyMap(),
		saving:    styles.NewSaveIndicator(theme),
		core:      core,
		width:     80,
		ctx:       ctx,
		loop:      loop,
		coalescer: coalescer,
		record:    opts.Record,
		favorites: opts.LoadFavorites,
		theme:     theme,
		results:   styles.NewResultsRenderer(theme),
		trips:     styles.NewTripRenderer(theme),
	}

	for i := range searchFieldCount {
		f := formField(i)
		desc := searchFields[f]
		renderKey := "render-" + strconv.Itoa(i)

		var ctrl *component.SearchController
		ctrl = component.Bind(component.BindOptions{
			Context:    ctx,
			Search:     opts.Search,
			Recent:     opts.Recent,
			Category:   desc.category,
			DebounceMs: opts.SearchDebounceMs,
			MaxResults: opts.MaxResults,
			Dispatcher: loop,
			OnChange: func(value string) {
				core.fieldChanged(f, value)
			},
			OnSelect: func(result entity.SearchResult) {
				if f == fieldVehicle {
					core.vehicleSelected(result)
				}
			},
			OnRender: func(component.View) {
				coalescer.Post(renderKey, func() {
					core.views[f] = ctrl.Snapshot()
				})
			},
		})
		core.ctrls[f] = ctrl

		m.inputs[f] = styles.NewFieldInput(theme, desc.label, desc.category)
		m.searching[f] = styles.NewSearchIndicator(theme, desc.category)
	}
	m.inputs[fieldQuantity] = styles.NewNumberInput(theme, "Quantity", "1")
	m.inputs[fieldPrice] = styles.NewNumberInput(theme, "Unit price", "from route history")

	core.newRow()
	m.syncInputs()
	m.inputs[fieldVehicle].Focus()
	return m
}

// Recorded returns how many trips were saved.
func (m TripFormModel) Recorded() int {
	return m.core.recorded
}

// SetDebounce changes the search and suggestion delays. It is safe to call
// from any goroutine.
func (m TripFormModel) SetDebounce(searchMs, suggestMs int) {
	core := m.core
	m.loop.Post(func() {
		for _, ctrl := range core.ctrls {
			ctrl.SetDebounce(searchMs)
		}
		core.suggester.SetDebounce(suggestMs)
	})
}

// Init implements tea.Model.
func (m TripFormModel) Init() tea.Cmd {
	m.core.ctrls[m.focus].Focus()
	m.loop.Drain()
	if m.favorites != nil {
		go m.loadFavorites()
	}
	cmds := []tea.Cmd{textinput.Blink, m.waitForLoop}
	for _, indicator := range m.searching {
		cmds = append(cmds, indicator.Spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// loadFavorites fetches each category once and hands the favorites to
// every controller searching it.
func (m TripFormModel) loadFavorites() {
	log := logging.FromContext(m.ctx)
	loaded := make(map[entity.Category]bool)
	for i, desc := range searchFields {
		if loaded[desc.category] {
			continue
		}
		loaded[desc.category] = true

		favorites, err := m.favorites(m.ctx, desc.category)
		if err != nil {
			log.Warn().Err(err).Str("category", string(desc.category)).Msg("favorites unavailable")
			continue
		}

		category := desc.category
		core := m.core
		m.loop.Post(func() {
			for j := i; j < searchFieldCount; j++ {
				if searchFields[j].category == category {
					core.ctrls[j].SetFavorites(favorites)
				}
			}
		})
	}
}

func (m TripFormModel) waitForLoop() tea.Msg {
	select {
	case <-m.loop.Notify():
		return loopMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

// Update implements tea.Model.
func (m TripFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case loopMsg:
		cmds = append(cmds, m.waitForLoop)

	case tripRecordedMsg:
		m = m.recorded(msg)

	case tea.KeyMsg:
		model, cmd, done := m.handleKeyMsg(msg)
		if done {
			return model, cmd
		}
		m = model
		cmds = append(cmds, cmd)

	default:
		for i := range m.searching {
			var cmd tea.Cmd
			m.searching[i].Spinner, cmd = m.searching[i].Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.saving.Spinner, cmd = m.saving.Spinner.Update(msg)
		cmds = append(cmds, cmd)
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	m.loop.Drain()
	m.syncInputs()
	return m, tea.Batch(cmds...)
}

// syncInputs copies values set by callbacks into the text inputs.
func (m *TripFormModel) syncInputs() {
	for f := range fieldCount {
		if !m.core.pending[f] {
			continue
		}
		m.core.pending[f] = false
		m.inputs[f].SetValue(m.core.values[f])
	}
}

func (m TripFormModel) handleKeyMsg(msg tea.KeyMsg) (TripFormModel, tea.Cmd, bool) {
	ctrl := m.controller()

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil, false

	case key.Matches(msg, m.keys.Cancel):
		if ctrl != nil && ctrl.Key(component.KeyEscape) {
			return m, nil, false
		}
		return m.quit()

	case key.Matches(msg, m.keys.Save):
		model, cmd := m.save()
		return model, cmd, false

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil, false

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil, false

	case key.Matches(msg, m.keys.Up):
		if ctrl != nil {
			ctrl.Key(component.KeyArrowUp)
		}
		return m, nil, false

	case key.Matches(msg, m.keys.Down):
		if ctrl != nil {
			ctrl.Key(component.KeyArrowDown)
		}
		return m, nil, false

	case key.Matches(msg, m.keys.Select):
		if ctrl != nil && ctrl.Key(component.KeyEnter) {
			m.loop.Drain()
			return m.moveFocus(1), nil, false
		}
		if m.focus == fieldPrice {
			model, cmd := m.save()
			return model, cmd, false
		}
		return m.moveFocus(1), nil, false
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if value := m.inputs[m.focus].Value(); value != before {
		m.typed(value)
	}
	return m, cmd, false
}

// typed forwards a keyboard edit of the focused field.
func (m TripFormModel) typed(value string) {
	core := m.core
	switch {
	case m.focus.searchable():
		core.values[m.focus] = value
		core.ctrls[m.focus].Input(value)
	case m.focus == fieldPrice:
		core.priceTyped(value)
	default:
		core.values[m.focus] = value
	}
}

// controller returns the focused field's search controller, if any.
func (m TripFormModel) controller() *component.SearchController {
	if !m.focus.searchable() {
		return nil
	}
	return m.core.ctrls[m.focus]
}

func (m TripFormModel) moveFocus(delta int) TripFormModel {
	if ctrl := m.controller(); ctrl != nil {
		ctrl.Dismiss()
	}
	m.inputs[m.focus].Blur()

	m.focus = formField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.inputs[m.focus].Focus()
	if ctrl := m.controller(); ctrl != nil {
		ctrl.Focus()
	}
	return m
}

func (m TripFormModel) save() (TripFormModel, tea.Cmd) {
	core := m.core
	if core.saving {
		return m, nil
	}
	if m.record == nil {
		core.setStatus("recording is not available", true)
		return m, nil
	}

	trip, suggested, err := core.trip()
	if err != nil {
		core.setStatus(err.Error(), true)
		return m, nil
	}

	core.saving = true
	core.setStatus("", false)
	ctx, record := m.ctx, m.record
	return m, tea.Batch(
		m.saving.Spinner.Tick,
		func() tea.Msg {
			return tripRecordedMsg{trip: trip, suggested: suggested, err: record(ctx, trip)}
		},
	)
}

// recorded starts a new row after a successful save and moves focus to the
// origin field.
func (m TripFormModel) recorded(msg tripRecordedMsg) TripFormModel {
	core := m.core
	core.saving = false
	if msg.err != nil {
		core.setStatus(msg.err.Error(), true)
		return m
	}

	core.recorded++
	core.setStatus(m.trips.RenderTripRecorded(msg.trip, msg.suggested), false)
	core.newRow()

	if ctrl := m.controller(); ctrl != nil {
		ctrl.Dismiss()
	}
	m.inputs[m.focus].Blur()
	m.focus = fieldOrigin
	m.inputs[m.focus].Focus()
	return m
}

func (m TripFormModel) quit() (TripFormModel, tea.Cmd, bool) {
	for _, ctrl := range m.core.ctrls {
		ctrl.Close()
	}
	m.core.suggester.Close()
	m.coalescer.Destroy()
	m.loop.Stop()
	return m, tea.Quit, true
}

// View implements tea.Model.
func (m TripFormModel) View() string {
	t := m.theme
	core := m.core

	lines := []string{t.Title.Render(styles.IconRoute + " New trip")}
	for f := range fieldCount {
		focused := f == m.focus
		line := t.InputBox(m.inputs[f].View(), focused)
		if f == fieldPrice {
			if state, ok := core.suggester.Row(core.row); ok && state.AutoLoaded {
				line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", t.Subtle.Render("route history"))
			}
		}
		lines = append(lines, line)

		if !focused || !f.searchable() {
			continue
		}
		switch view := core.views[f]; view.State {
		case component.StateOpenLoading:
			lines = append(lines, "  "+m.searching[f].View())
		case component.StateOpenIdle:
			lines = append(lines, m.results.RenderList(view.Results, view.Selected, view.Empty))
		}
	}

	switch {
	case core.saving:
		lines = append(lines, m.saving.View())
	case core.statusErr:
		lines = append(lines, t.ErrorStyle.Render(core.status))
	case core.status != "":
		lines = append(lines, core.status)
	}

	lines = append(lines, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
