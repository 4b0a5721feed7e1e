package weather

import (
	"context"
	"time"

	"weather-dash/internal/domain/model"
)

// UseCase coordinates the forecast gateway, the location resolver and the
// state store. It is the single point that converts gateway errors into the
// user-facing error message; callers observe outcomes through the store and
// the projection accessors.
type UseCase interface {
	// LoadWeatherData fetches the forecast for a location, derives the
	// snapshot and projections, and dispatches the results into the store.
	// With no API key configured it dispatches a configuration error and
	// issues no request.
	LoadWeatherData(ctx context.Context, location model.LocationQuery, settings model.Settings)

	// DetectUserLocation resolves the current position. A usable city hint
	// becomes a city change (which triggers the fetch through the city-change
	// binding); otherwise the coordinates are loaded directly. Resolution
	// failure dispatches an error and falls back to the default city.
	DetectUserLocation(ctx context.Context)

	// Refresh reloads the currently selected city; no-op when none is selected.
	Refresh(ctx context.Context)

	// BindCityChanges subscribes to the store so that a selected-city change
	// reloads weather data. Returns the unsubscribe function.
	BindCityChanges() (unbind func())

	// HourlyForecast returns the current hourly projection.
	HourlyForecast() []model.HourlyForecastEntry

	// DailyForecast returns the current daily projection.
	DailyForecast() []model.DailyForecastEntry

	// IsLoading reports whether a load cycle is in flight.
	IsLoading() bool

	// IsDetectingLocation reports whether location detection is in flight.
	IsDetectingLocation() bool

	// LastUpdated returns the completion time of the most recent successful
	// load, and whether one has happened.
	LastUpdated() (time.Time, bool)
}
