package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// TripRenderer renders trips and route prices.
type TripRenderer struct {
	theme *Theme
}

// NewTripRenderer creates a renderer using theme.
func NewTripRenderer(theme *Theme) *TripRenderer {
	return &TripRenderer{theme: theme}
}

// FormatPrice renders a unit price without trailing zeros.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// RenderTrips renders trips as a table, newest first.
func (r *TripRenderer) RenderTrips(trips []*entity.Trip) string {
	t := r.theme
	if len(trips) == 0 {
		return t.Subtle.Render("No trips recorded")
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("ID", "Date", "Vehicle", "Route", "Qty", "Unit", "Amount").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Highlight.Padding(0, 1)
			}
			return t.Normal.Padding(0, 1)
		})

	for _, trip := range trips {
		tbl.Row(
			strconv.FormatInt(int64(trip.ID), 10),
			trip.Date.Format("2006-01-02"),
			trip.VehiclePlate,
			trip.Route().String(),
			FormatPrice(trip.Quantity),
			FormatPrice(trip.UnitPrice),
			FormatPrice(trip.Amount()),
		)
	}
	return tbl.Render()
}

// RenderTripRecorded renders the confirmation for a saved trip.
func (r *TripRenderer) RenderTripRecorded(trip *entity.Trip, suggested bool) string {
	t := r.theme
	line := fmt.Sprintf("✓ Trip #%d recorded: %s %s × %s",
		trip.ID, trip.Route().String(), FormatPrice(trip.Quantity), FormatPrice(trip.UnitPrice))
	out := t.SuccessStyle.Render(line)
	if suggested {
		out += " " + t.Subtle.Render("(price from route history)")
	}
	return out
}

// RenderRoutePrice renders the outcome of a route price lookup.
func (r *TripRenderer) RenderRoutePrice(route entity.RouteKey, price float64, found bool) string {
	t := r.theme
	if !found {
		return t.Subtle.Render("No price history for " + route.String())
	}
	return fmt.Sprintf("%s %s", t.Title.Render(route.String()), t.Highlight.Render(FormatPrice(price)))
}
