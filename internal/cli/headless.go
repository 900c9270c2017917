package cli

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/ui/component"
	"github.com/bnema/tripbook/internal/ui/mainloop"
)

// headlessDebounceMs keeps one-shot commands from waiting on a keystroke
// debounce that no one types into.
const headlessDebounceMs = 1

// SearchOnceOptions configures SearchOnce.
type SearchOnceOptions struct {
	Search     port.SearchProvider
	Recent     port.RecentItems
	Favorites  []entity.SearchResult
	Category   entity.Category
	Query      string
	MaxResults int
}

// SearchOnce binds a search controller on a private loop, types opts.Query
// into it and returns the first settled list.
func SearchOnce(ctx context.Context, opts SearchOnceOptions) (component.View, error) {
	loop := mainloop.New()

	var settled *component.View
	ctrl := component.Bind(component.BindOptions{
		Context:    ctx,
		Search:     opts.Search,
		Recent:     opts.Recent,
		Favorites:  opts.Favorites,
		Category:   opts.Category,
		DebounceMs: headlessDebounceMs,
		MaxResults: opts.MaxResults,
		Dispatcher: loop,
		OnRender: func(v component.View) {
			if v.State == component.StateOpenIdle && settled == nil {
				settled = &v
				loop.Stop()
			}
		},
	})

	loop.Post(func() {
		if opts.Query == "" {
			ctrl.Focus()
			return
		}
		ctrl.Input(opts.Query)
	})

	err := loop.Run(ctx)
	ctrl.Close()
	if settled == nil {
		if err == nil {
			err = errors.New("search ended without results")
		}
		return component.View{}, fmt.Errorf("search %s: %w", opts.Category, err)
	}
	return *settled, nil
}

// SuggestPriceOptions configures SuggestPrice.
type SuggestPriceOptions struct {
	Lookup       port.RoutePriceLookup
	Eligibility  component.EligibilityPolicy
	Origin       string
	Destination  string
	InitialPrice float64
}

// resolveDispatcher stops its loop right after the callback posted by a
// finished lookup, which is the suggester resolving that lookup.
type resolveDispatcher struct {
	*mainloop.Loop
	armed atomic.Bool
}

func (d *resolveDispatcher) Post(fn func()) {
	if d.armed.CompareAndSwap(true, false) {
		d.Loop.Post(func() {
			fn()
			d.Loop.Stop()
		})
		return
	}
	d.Loop.Post(fn)
}

// notifyingLookup arms the dispatcher once the wrapped lookup returned.
type notifyingLookup struct {
	port.RoutePriceLookup
	dispatcher *resolveDispatcher
}

func (l notifyingLookup) LookupRoutePrice(ctx context.Context, origin, destination string) (float64, bool, error) {
	price, found, err := l.RoutePriceLookup.LookupRoutePrice(ctx, origin, destination)
	l.dispatcher.armed.Store(true)
	return price, found, err
}

// SuggestPrice runs one trip row through a route price suggester and
// returns the row's price once the lookup settled. A failed lookup is
// logged by the suggester and, like a route without history, leaves the
// initial price in place. Only an invalid route or a cancelled ctx is an
// error.
func SuggestPrice(ctx context.Context, opts SuggestPriceOptions) (component.RowPriceState, error) {
	const rowID component.RowID = "cli"

	route := entity.NewRouteKey(opts.Origin, opts.Destination)
	if !route.Valid() {
		return component.RowPriceState{}, fmt.Errorf("%w: %q", entity.ErrInvalidRoute, route.String())
	}

	dispatcher := &resolveDispatcher{Loop: mainloop.New()}
	suggester := component.NewRoutePriceSuggester(component.SuggesterOptions{
		Context:     ctx,
		Lookup:      notifyingLookup{RoutePriceLookup: opts.Lookup, dispatcher: dispatcher},
		Dispatcher:  dispatcher,
		DebounceMs:  headlessDebounceMs,
		Eligibility: opts.Eligibility,
	})
	defer suggester.Close()

	dispatcher.Post(func() {
		suggester.AddRow(rowID, opts.InitialPrice)
		suggester.OnOriginOrDestinationChange(rowID, route.Origin, route.Destination)
		if !suggester.Eligible(rowID) {
			dispatcher.Stop()
		}
	})

	if err := dispatcher.Run(ctx); err != nil {
		return component.RowPriceState{}, err
	}

	state, _ := suggester.Row(rowID)
	return state, nil
}
