package db

import (
	"context"

	"weather-dash/internal/domain/entity"
)

// FavoritesGateway defines the persistence contract for favorite cities.
// Implementations wrap storage failures in apperr.ErrStorageUnavailable.
type FavoritesGateway interface {
	// Upsert stores the pair with the current timestamp; re-adding an
	// existing pair refreshes the timestamp without duplicating.
	Upsert(ctx context.Context, city, country string) error

	// Delete removes the pair; deleting an absent pair is a no-op.
	Delete(ctx context.Context, city, country string) error

	// FindAll returns every stored favorite. Order is unspecified.
	FindAll(ctx context.Context) ([]entity.FavoriteCity, error)

	// Exists checks whether the pair is stored.
	Exists(ctx context.Context, city, country string) (bool, error)
}
