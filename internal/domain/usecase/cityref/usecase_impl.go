package cityref

import (
	"context"
	"errors"
	"strings"
	"time"

	"weather-dash/internal/domain/gateway/api"
	"weather-dash/internal/domain/model"
	"weather-dash/pkg/debounce"
	"weather-dash/pkg/log"
	"weather-dash/pkg/redis"
)

const (
	cacheKey       = "reference-list"
	maxSuggestions = 8
)

type cityRefUseCase struct {
	gateway   api.CityRefGateway
	cache     *redis.Cache
	debouncer *debounce.Debouncer
}

// NewCityRefUseCase builds the autocomplete use case. cache may be nil when
// Redis is not available, in which case every lookup goes to the gateway.
func NewCityRefUseCase(gateway api.CityRefGateway, cache *redis.Cache, debounceWait time.Duration) UseCase {
	return &cityRefUseCase{
		gateway:   gateway,
		cache:     cache,
		debouncer: debounce.New(debounceWait),
	}
}

func (u *cityRefUseCase) Suggest(ctx context.Context, prefix string) ([]model.CitySuggestion, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []model.CitySuggestion{}, nil
	}

	cities, err := u.referenceList(ctx)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(prefix)
	matches := make([]model.CitySuggestion, 0, maxSuggestions)
	for _, city := range cities {
		if strings.HasPrefix(strings.ToLower(city.Name), lowered) {
			matches = append(matches, city)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches, nil
}

func (u *cityRefUseCase) SuggestAsync(prefix string, deliver func([]model.CitySuggestion, error)) {
	u.debouncer.Do(func() {
		deliver(u.Suggest(context.Background(), prefix))
	})
}

func (u *cityRefUseCase) RenewCache(ctx context.Context) error {
	cities, err := u.gateway.FetchCities(ctx)
	if err != nil {
		return err
	}
	if u.cache == nil {
		return nil
	}
	return u.cache.Set(ctx, cacheKey, cities)
}

// referenceList returns the cached city list, populating the cache on a miss.
// Cache failures are logged and fall through to a direct gateway fetch.
func (u *cityRefUseCase) referenceList(ctx context.Context) ([]model.CitySuggestion, error) {
	if u.cache != nil {
		var cached []model.CitySuggestion
		err := u.cache.Get(ctx, cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrKeyNotFound) {
			log.Warnf("city reference cache read failed, falling back to direct fetch: %v", err)
		}
	}

	cities, err := u.gateway.FetchCities(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, cacheKey, cities); err != nil {
			log.Warnf("city reference cache write failed: %v", err)
		}
	}
	return cities, nil
}
