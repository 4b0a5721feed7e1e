package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weather-dash/internal/domain/apperr"
	"weather-dash/internal/domain/entity"
)

// gormFavoritesGateway implements FavoritesGateway over the embedded sqlite
// database
type gormFavoritesGateway struct {
	db *gorm.DB
}

// NewGormFavoritesGateway creates a FavoritesGateway and migrates its table.
func NewGormFavoritesGateway(db *gorm.DB) (FavoritesGateway, error) {
	if err := db.AutoMigrate(&entity.FavoriteCity{}); err != nil {
		return nil, fmt.Errorf("%w: migrating favorites: %v", apperr.ErrStorageUnavailable, err)
	}
	return &gormFavoritesGateway{db: db}, nil
}

// Upsert stores the pair, refreshing the timestamp when it already exists
func (g *gormFavoritesGateway) Upsert(ctx context.Context, city, country string) error {
	record := entity.FavoriteCity{
		Key:     entity.FavoriteKey(city, country),
		City:    city,
		Country: country,
		AddedAt: time.Now().UnixMilli(),
	}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"added_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: saving favorite %s: %v", apperr.ErrStorageUnavailable, record.Key, err)
	}
	return nil
}

// Delete removes the pair by key
func (g *gormFavoritesGateway) Delete(ctx context.Context, city, country string) error {
	key := entity.FavoriteKey(city, country)
	err := g.db.WithContext(ctx).
		Delete(&entity.FavoriteCity{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("%w: deleting favorite %s: %v", apperr.ErrStorageUnavailable, key, err)
	}
	return nil
}

// FindAll returns every stored favorite
func (g *gormFavoritesGateway) FindAll(ctx context.Context) ([]entity.FavoriteCity, error) {
	var records []entity.FavoriteCity
	err := g.db.WithContext(ctx).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing favorites: %v", apperr.ErrStorageUnavailable, err)
	}
	return records, nil
}

// Exists checks whether the pair is stored
func (g *gormFavoritesGateway) Exists(ctx context.Context, city, country string) (bool, error) {
	key := entity.FavoriteKey(city, country)
	var count int64
	err := g.db.WithContext(ctx).
		Model(&entity.FavoriteCity{}).
		Where("key = ?", key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: checking favorite %s: %v", apperr.ErrStorageUnavailable, key, err)
	}
	return count > 0, nil
}
