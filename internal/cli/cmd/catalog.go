package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
)

var (
	catalogFavorite bool
	catalogOwner    string
	catalogPrice    float64
	catalogPhone    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage registered vehicles, locations and drivers",
	Long: `The catalog is what search inputs look values up in.

Examples:
  tripbook catalog add vehicle 12가3456 --owner Kim --price 1350 --favorite
  tripbook catalog add location Busan
  tripbook catalog add driver "Lee Min" --phone 010-1234-5678
  tripbook catalog find vehicle 가34
  tripbook catalog favorites location
  tripbook catalog remove 7`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <vehicle|location|driver> <value>",
	Short: "Register or update a catalog item",
	Args:  cobra.ExactArgs(2),
	RunE:  runCatalogAdd,
}

var catalogFindCmd = &cobra.Command{
	Use:   "find <category> <query...>",
	Short: "Search the catalog without recent values",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCatalogFind,
}

var catalogFavoritesCmd = &cobra.Command{
	Use:   "favorites <category>",
	Short: "List favorite items of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogFavorites,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a catalog item by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogRemove,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogAddCmd, catalogFindCmd, catalogFavoritesCmd, catalogRemoveCmd)

	f := catalogAddCmd.Flags()
	f.BoolVar(&catalogFavorite, "favorite", false, "mark as favorite")
	f.StringVar(&catalogOwner, "owner", "", "vehicle owner")
	f.Float64Var(&catalogPrice, "price", 0, "vehicle default unit price")
	f.StringVar(&catalogPhone, "phone", "", "driver phone number")
}

func runCatalogAdd(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}
	value := strings.TrimSpace(args[1])

	var item *entity.CatalogItem
	switch category {
	case entity.CategoryVehicle:
		item = entity.Vehicle{Plate: value, Owner: catalogOwner, DefaultUnitPrice: catalogPrice, Favorite: catalogFavorite}.CatalogItem()
	case entity.CategoryLocation:
		item = entity.Location{Name: value, Favorite: catalogFavorite}.CatalogItem()
	case entity.CategoryDriver:
		item = entity.Driver{Name: value, Phone: catalogPhone, Favorite: catalogFavorite}.CatalogItem()
	default:
		return fmt.Errorf("%w: cannot register into %q", entity.ErrUnknownCategory, category)
	}

	if err := app.Catalog.Register(app.Ctx(), item); err != nil {
		return err
	}

	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderSuccess(fmt.Sprintf("%s #%d saved: %s", category, item.ID, item.Label)))
	return nil
}

func runCatalogFind(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}

	results, err := app.Catalog.Search(app.Ctx(), category, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderCatalog(results))
	return nil
}

func runCatalogFavorites(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	category, err := entity.ParseCategory(args[0])
	if err != nil {
		return err
	}

	results, err := app.Catalog.Favorites(app.Ctx(), category)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderCatalog(results))
	return nil
}

func runCatalogRemove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid catalog id %q: %w", args[0], err)
	}

	if err := app.Catalog.Unregister(app.Ctx(), entity.CatalogItemID(id)); err != nil {
		return err
	}

	fmt.Println(styles.NewResultsRenderer(app.Theme).RenderSuccess(fmt.Sprintf("catalog item #%d removed", id)))
	return nil
}
