package health

import "weather-dash/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
