// Package entity defines domain entities for tripbook.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// TripID uniquely identifies a recorded trip.
type TripID int64

// Trip is one logged vehicle trip with its unit price.
type Trip struct {
	ID           TripID
	Date         time.Time
	VehicleID    int64
	VehiclePlate string
	DriverName   string
	Origin       string
	Destination  string
	Quantity     float64
	UnitPrice    float64
	Memo         string
	CreatedAt    time.Time
}

// Route returns the trip's directed route.
func (t *Trip) Route() RouteKey {
	return NewRouteKey(t.Origin, t.Destination)
}

// Amount returns quantity × unit price.
func (t *Trip) Amount() float64 {
	return t.Quantity * t.UnitPrice
}

// Validate checks the fields required to persist a trip.
func (t *Trip) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil trip", ErrInvalidTrip)
	}
	if strings.TrimSpace(t.VehiclePlate) == "" {
		return fmt.Errorf("%w: vehicle plate is required", ErrInvalidTrip)
	}
	if !t.Route().Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidTrip, ErrInvalidRoute)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidTrip)
	}
	if t.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be positive", ErrInvalidTrip)
	}
	return nil
}
