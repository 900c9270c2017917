package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli"
	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/logging"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <category> [query...]",
	Short: "Show the suggestions an input would list for a query",
	Long: `Run one lookup the way a search input does and print the list.

Categories: vehicle, location, driver, general (plural forms accepted).
Recent values come first, then exact matches, favorites and other matches.
Without a query the recent values and favorites are listed.

Examples:
  tripbook search vehicle 가34        # Plates containing 가34
  tripbook search location            # Recent and favorite locations
  tripbook search driver kim --json   # Machine-readable output`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
}

func runSearch(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}
	query := strings.Join(args[1:], " ")
	ctx := app.Ctx()

	favorites, err := app.Catalog.Favorites(ctx, category)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("favorites unavailable")
	}

	view, err := cli.SearchOnce(ctx, cli.SearchOnceOptions{
		Search:     app.Catalog,
		Recent:     app.Recent,
		Favorites:  favorites,
		Category:   category,
		Query:      query,
		MaxResults: app.Settings().Search.MaxResults,
	})
	if err != nil {
		return err
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view.Results)
	}

	renderer := styles.NewResultsRenderer(app.Theme)
	fmt.Println(renderer.RenderList(view.Results, -1, view.Empty))
	return nil
}
