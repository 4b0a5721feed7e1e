package cache

import "weather-dash/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
