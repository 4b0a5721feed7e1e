package model

import "fmt"

// Coordinates is a latitude/longitude pair, optionally annotated with a
// resolved city-name hint from reverse geocoding.
type Coordinates struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	CityHint string  `json:"cityHint,omitempty"`
}

// LocationQuery identifies a location either by free-text city name or by a
// coordinate pair. It is transient and never stored.
type LocationQuery struct {
	City   string
	Coords *Coordinates
}

// CityQuery builds a free-text location query.
func CityQuery(city string) LocationQuery {
	return LocationQuery{City: city}
}

// CoordinatesQuery builds a coordinate-pair location query.
func CoordinatesQuery(coords Coordinates) LocationQuery {
	return LocationQuery{Coords: &coords}
}

// IsZero reports whether the query identifies nothing.
func (q LocationQuery) IsZero() bool {
	return q.City == "" && q.Coords == nil
}

// Describe renders the query for error messages.
func (q LocationQuery) Describe() string {
	if q.City != "" {
		return q.City
	}
	if q.Coords != nil {
		return fmt.Sprintf("coordinates %.2f, %.2f", q.Coords.Lat, q.Coords.Lon)
	}
	return "unknown location"
}
