package api

import (
	"context"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
)

// ForecastGateway defines the interface for the third-party forecast endpoint
type ForecastGateway interface {
	// FetchForecast issues one GET against the 5 day / 3 hour forecast
	// endpoint for the given location and unit system, and returns the
	// normalized provider payload. It fails with apperr.ErrThrottled when a
	// call lands inside the admission cooldown window, and never retries.
	FetchForecast(ctx context.Context, location model.LocationQuery, units model.Unit) (*external.ForecastResponse, error)
}

// GeocodingGateway defines the interface for the reverse-geocoding endpoint
type GeocodingGateway interface {
	// ReverseGeocode resolves coordinates into a human-readable city name.
	// Callers treat a failure as optional enrichment, not an error.
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// CityRefGateway defines the interface for the city reference listing used by
// search autocomplete
type CityRefGateway interface {
	// FetchCities returns the reference list of large cities
	FetchCities(ctx context.Context) ([]model.CitySuggestion, error)
}
