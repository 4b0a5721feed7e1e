package db

import "weather-dash/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
