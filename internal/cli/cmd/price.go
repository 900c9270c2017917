package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
)

var priceCmd = &cobra.Command{
	Use:   "price <origin> <destination>",
	Short: "Show the latest unit price used on a route",
	Long: `Look up the unit price of the most recent trip from origin to destination.

Routes are directed: Seoul→Busan and Busan→Seoul have separate histories.

Examples:
  tripbook price Seoul Busan`,
	Args: cobra.ExactArgs(2),
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func runPrice(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	route := entity.NewRouteKey(args[0], args[1])
	price, found, err := app.Prices.LookupRoutePrice(app.Ctx(), route.Origin, route.Destination)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewTripRenderer(app.Theme).RenderRoutePrice(route, price, found))
	return nil
}
