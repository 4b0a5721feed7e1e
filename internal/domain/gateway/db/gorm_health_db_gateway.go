package db

import (
	"context"
	"time"

	"weather-dash/internal/domain/model"

	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

type GormHealthDBGateway struct {
	DB   *gorm.DB
	Path string
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB, path string) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db, Path: path}
}

func (gateway *GormHealthDBGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return gateway.down(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return gateway.down(err)
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"path":    gateway.Path,
			"message": string(model.StatusUp),
		},
	}
}

func (gateway *GormHealthDBGateway) down(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"path":    gateway.Path,
			"message": err.Error(),
		},
	}
}
