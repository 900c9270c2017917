package entity

import "errors"

var (
	// ErrUnknownCategory is returned when a category string cannot be parsed.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidRoute is returned for routes with a missing or identical endpoint.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrInvalidTrip is returned when a trip fails validation.
	ErrInvalidTrip = errors.New("invalid trip")
)
