package position

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"weather-dash/internal/domain/apperr"
	"weather-dash/pkg/http"
)

// ipLookupResponse is the ip-api.com style JSON payload
type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// IPSourceOptions configures the IP geolocation source.
type IPSourceOptions struct {
	// Timeout bounds the lookup; defaults to 10 seconds.
	Timeout time.Duration
	// MaxAge is how long a previously obtained fix stays acceptable without
	// a fresh lookup; defaults to 5 minutes.
	MaxAge time.Duration
}

// IPSource resolves the current position from the caller's public IP address.
// A fix is cached for MaxAge, mirroring the platform-level maximumAge hint.
type IPSource struct {
	httpClient *http.Client
	timeout    time.Duration
	maxAge     time.Duration

	mu        sync.Mutex
	last      Position
	fetchedAt time.Time
}

// NewIPSource creates an IPSource against the given lookup base URL.
func NewIPSource(baseURL string, opts IPSourceOptions) *IPSource {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 5 * time.Minute
	}

	return &IPSource{
		httpClient: http.NewHttpClient(baseURL, http.ClientOptions{
			ReadTimeout: opts.Timeout,
		}),
		timeout: opts.Timeout,
		maxAge:  opts.MaxAge,
	}
}

// Current returns the device position, reusing a fix younger than MaxAge.
func (s *IPSource) Current(ctx context.Context) (Position, error) {
	s.mu.Lock()
	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.maxAge {
		pos := s.last
		s.mu.Unlock()
		return pos, nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	successResp, _, status, err := s.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/json").
		WithSuccessResp(&ipLookupResponse{}).
		Execute()

	if err != nil {
		return Position{}, mapLookupError(status, err)
	}

	lookup := successResp.(*ipLookupResponse)
	if lookup.Status != "" && lookup.Status != "success" {
		return Position{}, apperr.NewGeolocationError(apperr.GeolocationUnavailable,
			fmt.Errorf("lookup rejected: %s", lookup.Message))
	}

	pos := Position{Lat: lookup.Lat, Lon: lookup.Lon}

	s.mu.Lock()
	s.last = pos
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return pos, nil
}

func mapLookupError(status int, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.NewGeolocationError(apperr.GeolocationTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.NewGeolocationError(apperr.GeolocationTimeout, err)
	}
	if status == 403 {
		return apperr.NewGeolocationError(apperr.GeolocationDenied, err)
	}
	return apperr.NewGeolocationError(apperr.GeolocationUnavailable, err)
}
