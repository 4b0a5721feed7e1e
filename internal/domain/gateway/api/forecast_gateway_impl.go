package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"weather-dash/internal/domain/apperr"
	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
	"weather-dash/pkg/http"
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	throttle   *Throttle
}

// NewForecastGateway creates a new ForecastGateway against the given base URL.
// The throttle is owned by the caller so it can be shared or reset in tests.
func NewForecastGateway(baseURL string, apiKey string, throttle *Throttle, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		apiKey:     apiKey,
		throttle:   throttle,
	}
}

// FetchForecast issues one GET for the location and normalizes the payload
func (g *forecastGatewayImpl) FetchForecast(ctx context.Context, location model.LocationQuery, units model.Unit) (*external.ForecastResponse, error) {
	if !g.throttle.Allow() {
		return nil, fmt.Errorf("%w: wait %s before trying again", apperr.ErrThrottled, g.throttle.Cooldown())
	}

	params := map[string]string{
		"units": string(units),
		"appid": g.apiKey,
	}
	if location.City != "" {
		params["q"] = location.City
	} else if location.Coords != nil {
		params["lat"] = strconv.FormatFloat(location.Coords.Lat, 'f', -1, 64)
		params["lon"] = strconv.FormatFloat(location.Coords.Lon, 'f', -1, 64)
	} else {
		return nil, fmt.Errorf("%w: empty location query", apperr.ErrFetchFailed)
	}

	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		if mapped := mapTransportError(err); mapped != nil {
			return nil, fmt.Errorf("%w while fetching weather for %s", mapped, location.Describe())
		}
		if status == 0 {
			return nil, fmt.Errorf("%w for %s: %v", apperr.ErrFetchFailed, location.Describe(), err)
		}
		return nil, g.mapStatusError(status, errResp, location)
	}

	response := successResp.(*external.ForecastResponse)

	// The provider occasionally answers 200 with a semantic error code in the body.
	if response.Cod != "" && response.Cod != "200" {
		code, _ := strconv.Atoi(response.Cod)
		return nil, g.mapStatusError(code, nil, location)
	}

	if len(response.List) == 0 {
		return nil, fmt.Errorf("%w for %s", apperr.ErrNoData, location.Describe())
	}

	normalizePartOfDay(response)

	return response, nil
}

// mapTransportError classifies timeouts and cancellations; nil means the
// failure carried an HTTP status and should be mapped by status instead.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// mapStatusError maps provider HTTP and semantic error codes to typed errors
func (g *forecastGatewayImpl) mapStatusError(status int, errResp any, location model.LocationQuery) error {
	switch {
	case status == 404:
		return fmt.Errorf("%w: %s", apperr.ErrLocationNotFound, location.Describe())
	case status == 401:
		return fmt.Errorf("%w: please check your OpenWeatherMap API key", apperr.ErrInvalidAPIKey)
	case status >= 500:
		return fmt.Errorf("%w: please try again later", apperr.ErrServiceUnavailable)
	}

	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		return fmt.Errorf("%w for %s: %s", apperr.ErrFetchFailed, location.Describe(), apiErr.Message)
	}
	return fmt.Errorf("%w for %s: status %d", apperr.ErrFetchFailed, location.Describe(), status)
}

// normalizePartOfDay repairs each entry's part-of-day flag to the closed
// two-valued enum, defaulting to day for anything unrecognized.
func normalizePartOfDay(response *external.ForecastResponse) {
	for i := range response.List {
		switch response.List[i].Sys.Pod {
		case string(model.PartOfDayDay), string(model.PartOfDayNight):
		default:
			response.List[i].Sys.Pod = string(model.PartOfDayDay)
		}
	}
}
