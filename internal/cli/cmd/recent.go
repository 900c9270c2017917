package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Inspect and edit recent values per category",
	Long: `Each category keeps its own most-recent-first list of committed values.

Examples:
  tripbook recent list vehicles
  tripbook recent remove location Busan
  tripbook recent clear driver`,
}

var recentListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List recent values (all categories when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecentList,
}

var recentAddCmd = &cobra.Command{
	Use:   "add <category> <value>",
	Short: "Push a value to the front of a recent list",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecentAdd,
}

var recentRemoveCmd = &cobra.Command{
	Use:   "remove <category> <value>",
	Short: "Forget one recent value",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecentRemove,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear <category>",
	Short: "Forget every recent value of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecentClear,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.AddCommand(recentListCmd, recentAddCmd, recentRemoveCmd, recentClearCmd)
}

func runRecentList(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	categories := entity.Categories()
	if len(args) == 1 {
		category, parseErr := entity.ParseCategory(args[0])
		if parseErr != nil {
			return parseErr
		}
		categories = []entity.Category{category}
	}

	renderer := styles.NewResultsRenderer(app.Theme)
	for i, category := range categories {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(renderer.RenderRecent(category, app.Recent.Get(app.Ctx(), category)))
	}
	return nil
}

func runRecentAdd(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}

	app.Recent.Add(app.Ctx(), category, args[1])
	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderSuccess(fmt.Sprintf("%s added to recent %s", args[1], category)))
	return nil
}

func runRecentRemove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}

	app.Recent.Remove(app.Ctx(), category, args[1])
	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderSuccess(fmt.Sprintf("%s removed from recent %s", args[1], category)))
	return nil
}

func runRecentClear(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}

	app.Recent.Clear(app.Ctx(), category)
	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderSuccess(fmt.Sprintf("recent %s cleared", category)))
	return nil
}
