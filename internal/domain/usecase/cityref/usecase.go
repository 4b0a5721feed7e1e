package cityref

import (
	"context"

	"weather-dash/internal/domain/model"
)

// UseCase serves the city reference list behind search autocomplete. The list
// is fetched once from the reference API and kept as a cached blob with a
// long TTL; a cache outage degrades to a direct fetch.
type UseCase interface {
	// Suggest returns up to 8 case-insensitive prefix matches.
	Suggest(ctx context.Context, prefix string) ([]model.CitySuggestion, error)

	// SuggestAsync debounces bursts of suggestion lookups (last call wins)
	// and delivers the surviving call's result to deliver.
	SuggestAsync(prefix string, deliver func([]model.CitySuggestion, error))

	// RenewCache refetches the reference list and replaces the cached blob.
	RenewCache(ctx context.Context) error
}
