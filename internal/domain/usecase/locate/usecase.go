package locate

import (
	"context"

	"weather-dash/internal/domain/model"
)

// FallbackCityHint is the sentinel hint used when reverse geocoding cannot
// attach a real city name to a resolved position.
const FallbackCityHint = "Your Location"

// UseCase resolves the user's current location.
type UseCase interface {
	// ResolveCurrentLocation obtains a one-shot position and enriches it with
	// a best-effort city-name hint. Geocoding failures never fail the
	// resolution; the hint falls back to FallbackCityHint. Position failures
	// surface as apperr.GeolocationError.
	ResolveCurrentLocation(ctx context.Context) (model.Coordinates, error)
}
