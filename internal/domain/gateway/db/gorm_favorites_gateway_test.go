package db

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weather-dash/internal/domain/entity"
)

func setupFavoritesGateway(t *testing.T) FavoritesGateway {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	gateway, err := NewGormFavoritesGateway(database)
	if err != nil {
		t.Fatalf("failed to create gateway: %v", err)
	}
	return gateway
}

func TestUpsertAndFindAll(t *testing.T) {
	gateway := setupFavoritesGateway(t)
	ctx := context.Background()

	if err := gateway.Upsert(ctx, "London", "GB"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := gateway.Upsert(ctx, "Tokyo", "JP"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	records, err := gateway.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(records))
	}
}

func TestUpsertSamePairDoesNotDuplicate(t *testing.T) {
	gateway := setupFavoritesGateway(t)
	ctx := context.Background()

	if err := gateway.Upsert(ctx, "London", "GB"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := gateway.Upsert(ctx, "London", "GB"); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	records, err := gateway.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single favorite after re-adding, got %d", len(records))
	}
	if records[0].Key != entity.FavoriteKey("London", "GB") {
		t.Fatalf("unexpected key %q", records[0].Key)
	}
}

func TestSameCityDifferentCountryAreDistinct(t *testing.T) {
	gateway := setupFavoritesGateway(t)
	ctx := context.Background()

	if err := gateway.Upsert(ctx, "Springfield", "US"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := gateway.Upsert(ctx, "Springfield", "CA"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	records, err := gateway.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected both pairs kept, got %d", len(records))
	}
}

func TestDeleteRemovesAndAbsentIsNoOp(t *testing.T) {
	gateway := setupFavoritesGateway(t)
	ctx := context.Background()

	if err := gateway.Upsert(ctx, "Paris", "FR"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := gateway.Delete(ctx, "Paris", "FR"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	exists, err := gateway.Exists(ctx, "Paris", "FR")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("expected favorite removed")
	}

	// Deleting again must not fail.
	if err := gateway.Delete(ctx, "Paris", "FR"); err != nil {
		t.Fatalf("deleting an absent favorite failed: %v", err)
	}
}

func TestExists(t *testing.T) {
	gateway := setupFavoritesGateway(t)
	ctx := context.Background()

	if err := gateway.Upsert(ctx, "Oslo", "NO"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	exists, err := gateway.Exists(ctx, "Oslo", "NO")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected Oslo, NO stored")
	}

	exists, err = gateway.Exists(ctx, "Oslo", "SE")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("did not expect Oslo, SE stored")
	}
}
