package favorites

import (
	"context"

	"weather-dash/internal/domain/model"
)

// UseCase manages the favorite cities list. Storage failures are logged and
// absorbed here: reads degrade to empty/false and writes become no-ops, so a
// broken local store never blocks the dashboard.
type UseCase interface {
	// Add stores the pair; re-adding refreshes its timestamp.
	Add(ctx context.Context, city, country string)

	// Remove deletes the pair; removing an absent pair is a no-op.
	Remove(ctx context.Context, city, country string)

	// List returns all favorites, empty when the store is unavailable.
	List(ctx context.Context) []model.FavoriteCity

	// Contains reports whether the pair is stored, false when the store is
	// unavailable.
	Contains(ctx context.Context, city, country string) bool
}
