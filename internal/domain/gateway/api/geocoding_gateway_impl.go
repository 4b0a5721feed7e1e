package api

import (
	"context"
	"fmt"
	"strconv"

	"weather-dash/internal/domain/model/external"
	"weather-dash/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewGeocodingGateway creates a new GeocodingGateway against the given base URL
func NewGeocodingGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		apiKey:     apiKey,
	}
}

// ReverseGeocode resolves coordinates into a city name with a single lookup
func (g *geocodingGatewayImpl) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	params := map[string]string{
		"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
		"limit": "1",
		"appid": g.apiKey,
	}

	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/geo/1.0/reverse").
		WithQueryParams(params).
		WithSuccessResp(&[]external.ReverseGeocodingResult{}).
		Execute()

	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed (status %d): %w", status, err)
	}

	results := *successResp.(*[]external.ReverseGeocodingResult)
	if len(results) == 0 || results[0].Name == "" {
		return "", fmt.Errorf("reverse geocoding returned no result for %.4f, %.4f", lat, lon)
	}

	return results[0].Name, nil
}
