package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli"
	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/logging"
)

const tripDateLayout = "2006-01-02"

var (
	tripVehicle     string
	tripDriver      string
	tripOrigin      string
	tripDestination string
	tripQuantity    float64
	tripPrice       float64
	tripDate        string
	tripMemo        string
	tripListLimit   int
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Record and list trips",
}

var tripAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trip",
	Long: `Record a trip. Without --price the unit price of the last trip on the
same route is used. A route without history falls back to the vehicle's
registered default price, and the command fails when there is neither.

Recording a trip pushes its plate, endpoints and driver to the recent lists
and, when a broker is configured, tells other instances about the new price.

Examples:
  tripbook trip add --vehicle 12가3456 --from Seoul --to Busan --qty 2
  tripbook trip add --vehicle 12가3456 --from Seoul --to Busan --qty 1 --price 1350 --driver Kim`,
	RunE: runTripAdd,
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently recorded trips",
	RunE:  runTripList,
}

func init() {
	rootCmd.AddCommand(tripCmd)
	tripCmd.AddCommand(tripAddCmd, tripListCmd)

	f := tripAddCmd.Flags()
	f.StringVar(&tripVehicle, "vehicle", "", "vehicle plate")
	f.StringVar(&tripDriver, "driver", "", "driver name")
	f.StringVar(&tripOrigin, "from", "", "origin")
	f.StringVar(&tripDestination, "to", "", "destination")
	f.Float64Var(&tripQuantity, "qty", 1, "quantity")
	f.Float64Var(&tripPrice, "price", 0, "unit price (default: latest price on the route)")
	f.StringVar(&tripDate, "date", "", "trip date as YYYY-MM-DD (default: today)")
	f.StringVar(&tripMemo, "memo", "", "free-form note")
	_ = tripAddCmd.MarkFlagRequired("vehicle")
	_ = tripAddCmd.MarkFlagRequired("from")
	_ = tripAddCmd.MarkFlagRequired("to")

	tripListCmd.Flags().IntVarP(&tripListLimit, "limit", "n", 20, "number of trips to show")
}

func runTripAdd(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	date := time.Now()
	if tripDate != "" {
		if date, err = time.ParseInLocation(tripDateLayout, tripDate, time.Local); err != nil {
			return fmt.Errorf("invalid --date %q: %w", tripDate, err)
		}
	}

	trip := &entity.Trip{
		Date:         date,
		VehiclePlate: tripVehicle,
		DriverName:   tripDriver,
		Origin:       tripOrigin,
		Destination:  tripDestination,
		Quantity:     tripQuantity,
		UnitPrice:    tripPrice,
		Memo:         tripMemo,
	}

	suggested := false
	if tripPrice <= 0 {
		initial := vehicleDefaultPrice(app, tripVehicle)
		state, err := cli.SuggestPrice(ctx, cli.SuggestPriceOptions{
			Lookup:       app.Prices,
			Eligibility:  app.EligibilityPolicy(),
			Origin:       tripOrigin,
			Destination:  tripDestination,
			InitialPrice: initial,
		})
		if err != nil {
			return err
		}
		if !state.AutoLoaded && initial <= 0 {
			return errors.New("no price history for route; pass --price")
		}
		trip.UnitPrice = state.Price
		suggested = state.AutoLoaded
	}

	if err := app.Trips.Record(ctx, trip); err != nil {
		return err
	}

	fmt.Println(styles.NewTripRenderer(app.Theme).RenderTripRecorded(trip, suggested))
	return nil
}

// vehicleDefaultPrice returns the registered default unit price of plate,
// or 0 when the vehicle is unknown or has none.
func vehicleDefaultPrice(app *cli.App, plate string) float64 {
	results, err := app.Catalog.Search(app.Ctx(), entity.CategoryVehicle, plate)
	if err != nil {
		logging.FromContext(app.Ctx()).Debug().Err(err).Msg("vehicle lookup failed")
		return 0
	}
	for _, res := range results {
		if res.Kind != entity.KindExact || res.Value != strings.TrimSpace(plate) {
			continue
		}
		price, parseErr := strconv.ParseFloat(res.Meta(entity.MetaDefaultUnitPrice), 64)
		if parseErr == nil && price > 0 {
			return price
		}
	}
	return 0
}

func runTripList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	trips, err := app.Trips.ListRecent(app.Ctx(), tripListLimit)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewTripRenderer(app.Theme).RenderTrips(trips))
	return nil
}
