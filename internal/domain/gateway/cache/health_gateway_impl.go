package cache

import (
	"context"
	"strconv"
	"time"

	"weather-dash/internal/domain/model"
	"weather-dash/pkg/redis"
)

const healthPingTimeout = 2 * time.Second

type redisHealthGateway struct {
	client *redis.Client
}

// NewRedisHealthGateway reports the health of the Redis cache. client may be
// nil when the application runs without Redis, which reports UNKNOWN rather
// than DOWN since the cache is an optional component.
func NewRedisHealthGateway(client *redis.Client) HealthGateway {
	return &redisHealthGateway{client: client}
}

func (gateway *redisHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": "cache not configured",
			},
		}
	}

	config := gateway.client.GetConfig()
	details := map[string]string{
		"host": config.Host,
		"port": strconv.Itoa(config.Port),
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	if err := gateway.client.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: details,
		}
	}

	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: details,
	}
}
