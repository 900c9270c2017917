package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli"
	"github.com/bnema/tripbook/internal/cli/model"
	"github.com/bnema/tripbook/internal/domain/entity"
)

// errPickCancelled makes the command exit non-zero without printing a value.
var errPickCancelled = errors.New("pick cancelled")

var pickCmd = &cobra.Command{
	Use:   "pick <category> [initial]",
	Short: "Interactive search input for one category",
	Long: `Open a search input for vehicles, locations or drivers and print the
chosen value to stdout. The UI is drawn on stderr, so the command composes
with shell substitution:

  tripbook trip add --vehicle "$(tripbook pick vehicle)" --from "$(tripbook pick location)" ...

Keys: type to search, ↑/↓ to move, enter to choose, tab to show or hide
the list, ctrl+d to forget a recent value, esc to close the list or quit.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}
	initial := ""
	if len(args) == 2 {
		initial = args[1]
	}

	ctx := app.Ctx()
	settings := app.Settings()

	m := model.NewPickerModel(ctx, app.Theme, model.PickerOptions{
		Category:   category,
		Value:      initial,
		Search:     app.Catalog,
		Recent:     app.Recent,
		DebounceMs: settings.Search.DebounceMs,
		MaxResults: settings.Search.MaxResults,
		LoadFavorites: func(ctx context.Context) ([]entity.SearchResult, error) {
			return app.Catalog.Favorites(ctx, category)
		},
		Forget: func(value string) {
			app.Recent.Remove(ctx, category, value)
		},
	})

	app.WatchConfig(func(s cli.Settings) {
		m.SetDebounce(s.Search.DebounceMs)
	})

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	value, ok := final.(model.PickerModel).Chosen()
	if !ok {
		return errPickCancelled
	}
	fmt.Println(value)
	return nil
}
