package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli"
	"github.com/bnema/tripbook/internal/cli/model"
	"github.com/bnema/tripbook/internal/domain/entity"
)

var tripComposeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Record trips in an interactive form",
	Long: `Open a form for entering trips one after another. Vehicle, driver and
route fields search as you type, and the unit price follows the last price
recorded on the route until you type your own. Clearing the price field
hands it back to route history.

While the form is open, edits to the config file change the search and
suggestion delays, and trips recorded by other instances refresh route
prices when a broker is configured.

Keys: tab/shift+tab to move between fields, ↑/↓ and enter to choose a
suggestion, ctrl+s to record the trip, esc to close a list or quit.`,
	Args: cobra.NoArgs,
	RunE: runTripCompose,
}

func init() {
	tripCmd.AddCommand(tripComposeCmd)
}

func runTripCompose(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	settings := app.Settings()

	m := model.NewTripFormModel(ctx, app.Theme, model.TripFormOptions{
		Search:            app.Catalog,
		Recent:            app.Recent,
		Prices:            app.Prices,
		Eligibility:       app.EligibilityPolicy(),
		SearchDebounceMs:  settings.Search.DebounceMs,
		SuggestDebounceMs: settings.Suggest.DebounceMs,
		MaxResults:        settings.Search.MaxResults,
		LoadFavorites: func(ctx context.Context, category entity.Category) ([]entity.SearchResult, error) {
			return app.Catalog.Favorites(ctx, category)
		},
		Record: app.Trips.Record,
	})

	app.WatchConfig(func(s cli.Settings) {
		m.SetDebounce(s.Search.DebounceMs, s.Suggest.DebounceMs)
	})
	app.StartInvalidationConsumer()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run trip form: %w", err)
	}

	if n := final.(model.TripFormModel).Recorded(); n > 0 {
		fmt.Fprintf(os.Stderr, "%d trip(s) recorded\n", n)
	}
	return nil
}
