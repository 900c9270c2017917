package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// RoutingKeyTripRecorded is the routing key of TripRecordedEvent.
const RoutingKeyTripRecorded = "trip.recorded"

// TripRecordedEvent announces a persisted trip.
type TripRecordedEvent struct {
	TripID       int64     `json:"trip_id"`
	VehiclePlate string    `json:"vehicle_plate"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	UnitPrice    float64   `json:"unit_price"`
	Date         time.Time `json:"date"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// NewTripRecordedEvent builds the event for trip.
func NewTripRecordedEvent(trip *entity.Trip) TripRecordedEvent {
	return TripRecordedEvent{
		TripID:       int64(trip.ID),
		VehiclePlate: trip.VehiclePlate,
		Origin:       trip.Origin,
		Destination:  trip.Destination,
		UnitPrice:    trip.UnitPrice,
		Date:         trip.Date,
		RecordedAt:   trip.CreatedAt,
	}
}

// Route returns the event's directed route.
func (e TripRecordedEvent) Route() entity.RouteKey {
	return entity.NewRouteKey(e.Origin, e.Destination)
}

// DecodeTripRecordedEvent parses and checks an event body.
func DecodeTripRecordedEvent(body []byte) (TripRecordedEvent, error) {
	var event TripRecordedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return TripRecordedEvent{}, fmt.Errorf("failed to decode trip.recorded event: %w", err)
	}
	if !event.Route().Valid() {
		return TripRecordedEvent{}, errors.New("trip.recorded event has an invalid route")
	}
	return event, nil
}
