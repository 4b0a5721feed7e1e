package favorites

import (
	"context"

	"weather-dash/internal/domain/gateway/db"
	"weather-dash/internal/domain/model"
	"weather-dash/pkg/log"
)

type favoritesUseCase struct {
	gateway db.FavoritesGateway
}

// NewFavoritesUseCase creates the favorites use case over the given gateway.
func NewFavoritesUseCase(gateway db.FavoritesGateway) UseCase {
	return &favoritesUseCase{gateway: gateway}
}

// Add stores the pair, logging and absorbing storage failures
func (uc *favoritesUseCase) Add(ctx context.Context, city, country string) {
	if city == "" {
		return
	}
	if err := uc.gateway.Upsert(ctx, city, country); err != nil {
		log.Warnf("Failed to save favorite %s, %s: %v", city, country, err)
	}
}

// Remove deletes the pair, logging and absorbing storage failures
func (uc *favoritesUseCase) Remove(ctx context.Context, city, country string) {
	if err := uc.gateway.Delete(ctx, city, country); err != nil {
		log.Warnf("Failed to remove favorite %s, %s: %v", city, country, err)
	}
}

// List returns all favorites, degrading to empty on storage failure
func (uc *favoritesUseCase) List(ctx context.Context) []model.FavoriteCity {
	records, err := uc.gateway.FindAll(ctx)
	if err != nil {
		log.Warnf("Failed to list favorites: %v", err)
		return []model.FavoriteCity{}
	}

	favorites := make([]model.FavoriteCity, 0, len(records))
	for _, record := range records {
		favorites = append(favorites, model.FavoriteCity{
			City:    record.City,
			Country: record.Country,
		})
	}
	return favorites
}

// Contains reports membership, degrading to false on storage failure
func (uc *favoritesUseCase) Contains(ctx context.Context, city, country string) bool {
	exists, err := uc.gateway.Exists(ctx, city, country)
	if err != nil {
		log.Warnf("Failed to check favorite %s, %s: %v", city, country, err)
		return false
	}
	return exists
}
