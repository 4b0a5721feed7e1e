package cityref

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"weather-dash/internal/domain/model"
)

type fakeCityRefGateway struct {
	mu     sync.Mutex
	calls  int
	cities []model.CitySuggestion
	err    error
}

func (f *fakeCityRefGateway) FetchCities(ctx context.Context) ([]model.CitySuggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.cities, f.err
}

func (f *fakeCityRefGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func referenceCities() []model.CitySuggestion {
	return []model.CitySuggestion{
		{Name: "London", Country: "United Kingdom", CountryCode: "GB"},
		{Name: "Londrina", Country: "Brazil", CountryCode: "BR"},
		{Name: "Los Angeles", Country: "United States", CountryCode: "US"},
		{Name: "Tokyo", Country: "Japan", CountryCode: "JP"},
	}
}

func TestSuggestMatchesPrefixCaseInsensitive(t *testing.T) {
	gateway := &fakeCityRefGateway{cities: referenceCities()}
	uc := NewCityRefUseCase(gateway, nil, time.Millisecond)

	matches, err := uc.Suggest(context.Background(), "lon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected London and Londrina, got %d matches", len(matches))
	}
	if matches[0].Name != "London" || matches[1].Name != "Londrina" {
		t.Fatalf("unexpected matches %v", matches)
	}
}

func TestSuggestEmptyPrefixReturnsNothing(t *testing.T) {
	gateway := &fakeCityRefGateway{cities: referenceCities()}
	uc := NewCityRefUseCase(gateway, nil, time.Millisecond)

	matches, err := uc.Suggest(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches for blank prefix, got %d", len(matches))
	}
	if gateway.callCount() != 0 {
		t.Fatalf("blank prefix must not hit the gateway")
	}
}

func TestSuggestCapsAtEight(t *testing.T) {
	var cities []model.CitySuggestion
	names := []string{"Sa", "Sb", "Sc", "Sd", "Se", "Sf", "Sg", "Sh", "Si", "Sj"}
	for _, name := range names {
		cities = append(cities, model.CitySuggestion{Name: name})
	}
	gateway := &fakeCityRefGateway{cities: cities}
	uc := NewCityRefUseCase(gateway, nil, time.Millisecond)

	matches, err := uc.Suggest(context.Background(), "s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 8 {
		t.Fatalf("expected at most 8 matches, got %d", len(matches))
	}
}

func TestSuggestPropagatesGatewayFailure(t *testing.T) {
	gateway := &fakeCityRefGateway{err: errors.New("reference API down")}
	uc := NewCityRefUseCase(gateway, nil, time.Millisecond)

	if _, err := uc.Suggest(context.Background(), "lon"); err == nil {
		t.Fatalf("expected the gateway failure to surface")
	}
}

func TestSuggestAsyncLastCallWins(t *testing.T) {
	gateway := &fakeCityRefGateway{cities: referenceCities()}
	uc := NewCityRefUseCase(gateway, nil, 20*time.Millisecond)

	var mu sync.Mutex
	var delivered [][]model.CitySuggestion
	deliver := func(matches []model.CitySuggestion, err error) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, matches)
	}

	uc.SuggestAsync("l", deliver)
	uc.SuggestAsync("lo", deliver)
	uc.SuggestAsync("tok", deliver)

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 {
		t.Fatalf("expected a single delivery, got %d", len(delivered))
	}
	if len(delivered[0]) != 1 || delivered[0][0].Name != "Tokyo" {
		t.Fatalf("expected the last lookup to win, got %v", delivered[0])
	}
}

func TestRenewCacheWithoutCacheStillFetches(t *testing.T) {
	gateway := &fakeCityRefGateway{cities: referenceCities()}
	uc := NewCityRefUseCase(gateway, nil, time.Millisecond)

	if err := uc.RenewCache(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.callCount() != 1 {
		t.Fatalf("expected one fetch, got %d", gateway.callCount())
	}
}
