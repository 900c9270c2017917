package entity

import "strings"

// RouteKey is a directed (origin, destination) pair.
// A→B and B→A are different routes.
type RouteKey struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// NewRouteKey builds a route with whitespace-trimmed endpoints.
func NewRouteKey(origin, destination string) RouteKey {
	return RouteKey{
		Origin:      strings.TrimSpace(origin),
		Destination: strings.TrimSpace(destination),
	}
}

// Valid reports whether both endpoints are set and differ.
func (k RouteKey) Valid() bool {
	return k.Origin != "" && k.Destination != "" && k.Origin != k.Destination
}

func (k RouteKey) String() string {
	return k.Origin + "→" + k.Destination
}
