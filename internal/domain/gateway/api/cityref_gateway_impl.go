package api

import (
	"context"
	"fmt"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
	"weather-dash/pkg/http"
)

// cityRefGatewayImpl implements the CityRefGateway interface against the
// GeoDB cities API
type cityRefGatewayImpl struct {
	httpClient    *http.Client
	minPopulation int
}

// NewCityRefGateway creates a new CityRefGateway. host is the RapidAPI host
// header value, key the RapidAPI key.
func NewCityRefGateway(baseURL string, host string, key string, minPopulation int, clientOptions http.ClientOptions) CityRefGateway {
	if clientOptions.DefaultHeaders == nil {
		clientOptions.DefaultHeaders = make(map[string]string)
	}
	clientOptions.DefaultHeaders["x-rapidapi-host"] = host
	clientOptions.DefaultHeaders["x-rapidapi-key"] = key

	if minPopulation <= 0 {
		minPopulation = 1000000
	}

	return &cityRefGatewayImpl{
		httpClient:    http.NewHttpClient(baseURL, clientOptions),
		minPopulation: minPopulation,
	}
}

// FetchCities returns the reference list of large cities
func (g *cityRefGatewayImpl) FetchCities(ctx context.Context) ([]model.CitySuggestion, error) {
	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/geo/cities").
		WithQueryParams(map[string]string{
			"minPopulation": fmt.Sprintf("%d", g.minPopulation),
		}).
		WithSuccessResp(&external.CityRefResponse{}).
		WithErrorResp(&external.GeoDBErrorResponse{}).
		Execute()

	if err != nil {
		if geoErr, ok := errResp.(*external.GeoDBErrorResponse); ok && geoErr != nil && len(geoErr.Errors) > 0 {
			return nil, fmt.Errorf("city reference fetch failed: %s", geoErr.Errors[0].Message)
		}
		return nil, fmt.Errorf("city reference fetch failed (status %d): %w", status, err)
	}

	response := successResp.(*external.CityRefResponse)

	suggestions := make([]model.CitySuggestion, 0, len(response.Data))
	for _, entry := range response.Data {
		name := entry.City
		if name == "" {
			name = entry.Name
		}
		if name == "" {
			continue
		}
		suggestions = append(suggestions, model.CitySuggestion{
			Name:        name,
			Country:     entry.Country,
			CountryCode: entry.CountryCode,
			Latitude:    entry.Latitude,
			Longitude:   entry.Longitude,
		})
	}

	return suggestions, nil
}
