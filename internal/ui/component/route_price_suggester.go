package component

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/logging"
)

const (
	// DefaultRowPrice is the untouched price of a new trip row.
	DefaultRowPrice = 1.0

	defaultSuggestDebounceMs = 500
)

// EligibilityPolicy decides which untouched prices may be replaced by a
// suggestion.
type EligibilityPolicy string

const (
	// EligibleSentinelOnly allows suggestions while the price is
	// DefaultRowPrice or was itself suggested.
	EligibleSentinelOnly EligibilityPolicy = "sentinel"
	// EligibleInitialPrice additionally allows suggestions while the price
	// still equals the initial price the row was created with.
	EligibleInitialPrice EligibilityPolicy = "initial"
)

// ParseEligibilityPolicy parses a config value. Empty means sentinel.
func ParseEligibilityPolicy(s string) (EligibilityPolicy, error) {
	switch EligibilityPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", EligibleSentinelOnly:
		return EligibleSentinelOnly, nil
	case EligibleInitialPrice:
		return EligibleInitialPrice, nil
	}
	return "", fmt.Errorf("unknown eligibility policy %q (want sentinel or initial)", s)
}

// RowID identifies a trip row being composed.
type RowID string

// RowPriceState is the price shown in a row and whether it came from a
// suggestion.
type RowPriceState struct {
	Price      float64
	AutoLoaded bool
}

// SuggesterOptions configures a RoutePriceSuggester.
type SuggesterOptions struct {
	Context     context.Context
	Lookup      port.RoutePriceLookup
	Dispatcher  port.Dispatcher
	DebounceMs  int
	Eligibility EligibilityPolicy

	// OnApply is called after a suggestion replaced a row's price.
	OnApply func(id RowID, state RowPriceState)
}

type priceRow struct {
	state   RowPriceState
	initial float64
	edited  bool
	route   entity.RouteKey
	seq     uint64
	timer   port.Timer
}

// RoutePriceSuggester fills a row's unit price with the latest price used on
// the row's route, unless the user has taken ownership of the price.
//
// Every method must be called from the dispatcher's thread. Each row has its
// own debounce timer and sequence counter, so rows never affect each other.
type RoutePriceSuggester struct {
	ctx        context.Context
	lookup     port.RoutePriceLookup
	dispatcher port.Dispatcher
	debounce   time.Duration
	policy     EligibilityPolicy
	onApply    func(RowID, RowPriceState)

	rows      map[RowID]*priceRow
	destroyed bool
}

// NewRoutePriceSuggester creates a suggester with no rows.
func NewRoutePriceSuggester(opts SuggesterOptions) *RoutePriceSuggester {
	if opts.Dispatcher == nil {
		panic("component.NewRoutePriceSuggester: dispatcher cannot be nil")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	debounceMs := opts.DebounceMs
	if debounceMs <= 0 {
		debounceMs = defaultSuggestDebounceMs
	}
	policy := opts.Eligibility
	if policy == "" {
		policy = EligibleSentinelOnly
	}

	return &RoutePriceSuggester{
		ctx:        logging.WithComponent(ctx, "route-price-suggester"),
		lookup:     opts.Lookup,
		dispatcher: opts.Dispatcher,
		debounce:   time.Duration(debounceMs) * time.Millisecond,
		policy:     policy,
		onApply:    opts.OnApply,
		rows:       make(map[RowID]*priceRow),
	}
}

// SetDebounce changes the delay between a route change and its lookup.
// Pending timers keep their old delay; ms <= 0 restores the default.
func (s *RoutePriceSuggester) SetDebounce(ms int) {
	if ms <= 0 {
		ms = defaultSuggestDebounceMs
	}
	s.debounce = time.Duration(ms) * time.Millisecond
}

// AddRow registers a row. A non-positive initialPrice means DefaultRowPrice.
// Adding an existing id replaces the row.
func (s *RoutePriceSuggester) AddRow(id RowID, initialPrice float64) {
	if s.destroyed {
		return
	}
	if initialPrice <= 0 {
		initialPrice = DefaultRowPrice
	}
	if old, ok := s.rows[id]; ok {
		stopRowTimer(old)
	}
	s.rows[id] = &priceRow{
		state:   RowPriceState{Price: initialPrice},
		initial: initialPrice,
	}
}

// RemoveRow forgets a row and cancels its pending timer.
func (s *RoutePriceSuggester) RemoveRow(id RowID) {
	row, ok := s.rows[id]
	if !ok {
		return
	}
	stopRowTimer(row)
	delete(s.rows, id)
}

// Row returns the row's current price state.
func (s *RoutePriceSuggester) Row(id RowID) (RowPriceState, bool) {
	row, ok := s.rows[id]
	if !ok {
		return RowPriceState{}, false
	}
	return row.state, true
}

// Eligible reports whether a suggestion may currently replace the row's price.
func (s *RoutePriceSuggester) Eligible(id RowID) bool {
	row, ok := s.rows[id]
	return ok && s.eligible(row)
}

// OnOriginOrDestinationChange restarts the row's debounce timer when the
// row is eligible and its route is complete.
func (s *RoutePriceSuggester) OnOriginOrDestinationChange(id RowID, origin, destination string) {
	if s.destroyed {
		return
	}
	row, ok := s.rows[id]
	if !ok {
		return
	}

	row.route = entity.NewRouteKey(origin, destination)
	if !s.eligible(row) {
		return
	}

	stopRowTimer(row)
	if !row.route.Valid() {
		return
	}
	row.timer = s.dispatcher.AfterFunc(s.debounce, func() {
		s.fire(id, row)
	})
}

// OnPriceEdited records a direct user edit. The row stops receiving
// suggestions until ResetRow. A non-positive price counts as clearing the
// field and resets the row.
func (s *RoutePriceSuggester) OnPriceEdited(id RowID, price float64) {
	row, ok := s.rows[id]
	if !ok {
		return
	}
	if price <= 0 {
		s.ResetRow(id)
		return
	}

	stopRowTimer(row)
	row.seq++
	row.edited = true
	row.state = RowPriceState{Price: price, AutoLoaded: false}
}

// ResetRow puts the row back to DefaultRowPrice, making it eligible again.
func (s *RoutePriceSuggester) ResetRow(id RowID) {
	row, ok := s.rows[id]
	if !ok {
		return
	}

	stopRowTimer(row)
	row.seq++
	row.edited = false
	row.state = RowPriceState{Price: DefaultRowPrice, AutoLoaded: false}
}

// Close cancels every pending timer and drops all rows.
func (s *RoutePriceSuggester) Close() {
	if s.destroyed {
		return
	}
	for id, row := range s.rows {
		stopRowTimer(row)
		delete(s.rows, id)
	}
	s.destroyed = true
}

func (s *RoutePriceSuggester) eligible(row *priceRow) bool {
	if row.state.AutoLoaded {
		return true
	}
	if row.edited {
		return false
	}
	if row.state.Price == DefaultRowPrice {
		return true
	}
	return s.policy == EligibleInitialPrice && row.state.Price == row.initial
}

func (s *RoutePriceSuggester) fire(id RowID, row *priceRow) {
	row.timer = nil
	if s.destroyed || s.rows[id] != row || !row.route.Valid() || !s.eligible(row) {
		return
	}
	if s.lookup == nil {
		return
	}

	row.seq++
	seq := row.seq
	route := row.route

	ctx := s.ctx
	lookup := s.lookup
	go func() {
		price, found, err := lookup.LookupRoutePrice(ctx, route.Origin, route.Destination)
		s.dispatcher.Post(func() {
			s.resolve(id, row, seq, route, price, found, err)
		})
	}()
}

func (s *RoutePriceSuggester) resolve(
	id RowID, row *priceRow, seq uint64, route entity.RouteKey,
	price float64, found bool, err error,
) {
	log := logging.FromContext(s.ctx)

	if err != nil {
		log.Warn().Err(err).Str("row", string(id)).Str("route", route.String()).Msg("route price lookup failed")
		return
	}
	if !found || price <= 0 {
		return
	}
	if s.destroyed || s.rows[id] != row || seq != row.seq || row.route != route || !s.eligible(row) {
		log.Debug().Str("row", string(id)).Str("route", route.String()).Msg("discarding route price suggestion")
		return
	}

	row.state = RowPriceState{Price: price, AutoLoaded: true}
	log.Debug().
		Str("row", string(id)).
		Str("route", route.String()).
		Float64("price", price).
		Msg("route price suggested")

	if s.onApply != nil {
		s.onApply(id, row.state)
	}
}

func stopRowTimer(row *priceRow) {
	if row.timer != nil {
		row.timer.Stop()
		row.timer = nil
	}
}
