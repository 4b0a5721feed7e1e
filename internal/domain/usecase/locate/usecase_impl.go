package locate

import (
	"context"
	"errors"
	"time"

	"weather-dash/internal/domain/apperr"
	"weather-dash/internal/domain/gateway/api"
	"weather-dash/internal/domain/gateway/position"
	"weather-dash/internal/domain/model"
	"weather-dash/pkg/log"
)

type locateUseCase struct {
	source   position.Source
	geocoder api.GeocodingGateway
	timeout  time.Duration
}

// NewLocateUseCase creates the resolver. source may be nil when the
// environment has no position capability; geocoder may be nil when no
// geocoding key is configured (the hint then always falls back).
func NewLocateUseCase(source position.Source, geocoder api.GeocodingGateway, timeout time.Duration) UseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &locateUseCase{
		source:   source,
		geocoder: geocoder,
		timeout:  timeout,
	}
}

// ResolveCurrentLocation obtains a position and a best-effort city hint
func (uc *locateUseCase) ResolveCurrentLocation(ctx context.Context) (model.Coordinates, error) {
	if uc.source == nil {
		return model.Coordinates{}, apperr.NewGeolocationError(apperr.GeolocationUnsupported,
			errors.New("no position source configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	pos, err := uc.source.Current(ctx)
	if err != nil {
		if _, ok := apperr.AsGeolocationError(err); ok {
			return model.Coordinates{}, err
		}
		return model.Coordinates{}, apperr.NewGeolocationError(apperr.GeolocationUnavailable, err)
	}

	coords := model.Coordinates{
		Lat:      pos.Lat,
		Lon:      pos.Lon,
		CityHint: FallbackCityHint,
	}

	// Reverse geocoding is optional enrichment; its failure is logged and
	// swallowed, never propagated.
	if uc.geocoder != nil {
		if name, geoErr := uc.geocoder.ReverseGeocode(ctx, pos.Lat, pos.Lon); geoErr == nil && name != "" {
			coords.CityHint = name
		} else if geoErr != nil {
			log.Warnf("Failed to resolve city name for %.4f, %.4f: %v", pos.Lat, pos.Lon, geoErr)
		}
	}

	return coords, nil
}
