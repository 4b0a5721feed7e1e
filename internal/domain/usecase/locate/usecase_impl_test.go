package locate

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-dash/internal/domain/apperr"
	"weather-dash/internal/domain/gateway/position"
)

type fakeSource struct {
	pos position.Position
	err error
}

func (f *fakeSource) Current(ctx context.Context) (position.Position, error) {
	return f.pos, f.err
}

type fakeGeocoder struct {
	name string
	err  error
}

func (f *fakeGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return f.name, f.err
}

func TestResolveCurrentLocationWithCityName(t *testing.T) {
	source := &fakeSource{pos: position.Position{Lat: 48.85, Lon: 2.35}}
	uc := NewLocateUseCase(source, &fakeGeocoder{name: "Paris"}, time.Second)

	coords, err := uc.ResolveCurrentLocation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 48.85 || coords.Lon != 2.35 {
		t.Fatalf("unexpected coordinates %+v", coords)
	}
	if coords.CityHint != "Paris" {
		t.Fatalf("expected hint Paris, got %q", coords.CityHint)
	}
}

func TestResolveCurrentLocationGeocodingFailureFallsBack(t *testing.T) {
	source := &fakeSource{pos: position.Position{Lat: 1, Lon: 2}}
	uc := NewLocateUseCase(source, &fakeGeocoder{err: errors.New("geocoder down")}, time.Second)

	coords, err := uc.ResolveCurrentLocation(context.Background())
	if err != nil {
		t.Fatalf("geocoding failure must not fail the resolution: %v", err)
	}
	if coords.CityHint != FallbackCityHint {
		t.Fatalf("expected fallback hint, got %q", coords.CityHint)
	}
}

func TestResolveCurrentLocationWithoutGeocoder(t *testing.T) {
	source := &fakeSource{pos: position.Position{Lat: 1, Lon: 2}}
	uc := NewLocateUseCase(source, nil, time.Second)

	coords, err := uc.ResolveCurrentLocation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.CityHint != FallbackCityHint {
		t.Fatalf("expected fallback hint, got %q", coords.CityHint)
	}
}

func TestResolveCurrentLocationNilSourceIsUnsupported(t *testing.T) {
	uc := NewLocateUseCase(nil, nil, time.Second)

	_, err := uc.ResolveCurrentLocation(context.Background())

	geoErr, ok := apperr.AsGeolocationError(err)
	if !ok {
		t.Fatalf("expected a geolocation error, got %v", err)
	}
	if geoErr.Reason != apperr.GeolocationUnsupported {
		t.Fatalf("expected unsupported reason, got %q", geoErr.Reason)
	}
}

func TestResolveCurrentLocationSourceErrorsKeepTheirReason(t *testing.T) {
	source := &fakeSource{err: apperr.NewGeolocationError(apperr.GeolocationDenied, errors.New("403"))}
	uc := NewLocateUseCase(source, nil, time.Second)

	_, err := uc.ResolveCurrentLocation(context.Background())

	geoErr, ok := apperr.AsGeolocationError(err)
	if !ok || geoErr.Reason != apperr.GeolocationDenied {
		t.Fatalf("expected denied reason preserved, got %v", err)
	}
}

func TestResolveCurrentLocationWrapsPlainErrors(t *testing.T) {
	source := &fakeSource{err: errors.New("socket closed")}
	uc := NewLocateUseCase(source, nil, time.Second)

	_, err := uc.ResolveCurrentLocation(context.Background())

	geoErr, ok := apperr.AsGeolocationError(err)
	if !ok || geoErr.Reason != apperr.GeolocationUnavailable {
		t.Fatalf("expected unavailable reason, got %v", err)
	}
}
