// Package apperr defines the error taxonomy shared by the gateways and use
// cases. Callers classify failures with errors.Is against these sentinels.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates the forecast provider API key is not configured.
	ErrMissingAPIKey = errors.New("weather API key is not configured")

	// ErrLocationNotFound indicates the provider does not know the requested location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidAPIKey indicates the provider rejected the configured API key.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrServiceUnavailable indicates a provider-side failure (5xx).
	ErrServiceUnavailable = errors.New("weather service is temporarily unavailable")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("request timeout")

	// ErrThrottled indicates the call was rejected by admission control
	// before any request was issued.
	ErrThrottled = errors.New("request throttled")

	// ErrNoData indicates the provider answered with an empty or unusable payload.
	ErrNoData = errors.New("no weather data available")

	// ErrFetchFailed is the generic wrapper for unclassified fetch failures.
	ErrFetchFailed = errors.New("failed to fetch weather data")

	// ErrStorageUnavailable indicates the local favorites store could not be
	// reached. Callers degrade gracefully instead of surfacing it.
	ErrStorageUnavailable = errors.New("local storage unavailable")
)

// GeolocationReason narrows a GeolocationError.
type GeolocationReason string

const (
	GeolocationUnsupported GeolocationReason = "unsupported"
	GeolocationDenied      GeolocationReason = "denied"
	GeolocationUnavailable GeolocationReason = "unavailable"
	GeolocationTimeout     GeolocationReason = "timeout"
)

// GeolocationError is returned by the location resolver when the current
// position cannot be determined.
type GeolocationError struct {
	Reason GeolocationReason
	Err    error
}

func (e *GeolocationError) Error() string {
	switch e.Reason {
	case GeolocationUnsupported:
		return "geolocation is not supported in this environment"
	case GeolocationDenied:
		return "location access denied"
	case GeolocationUnavailable:
		return "location information is unavailable"
	case GeolocationTimeout:
		return "location request timed out"
	default:
		return fmt.Sprintf("geolocation failed: %v", e.Err)
	}
}

func (e *GeolocationError) Unwrap() error {
	return e.Err
}

// NewGeolocationError builds a GeolocationError with the given reason and cause.
func NewGeolocationError(reason GeolocationReason, err error) *GeolocationError {
	return &GeolocationError{Reason: reason, Err: err}
}

// AsGeolocationError unwraps err into a GeolocationError if it is one.
func AsGeolocationError(err error) (*GeolocationError, bool) {
	var geoErr *GeolocationError
	if errors.As(err, &geoErr) {
		return geoErr, true
	}
	return nil, false
}
