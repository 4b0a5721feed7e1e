package health

import (
	"testing"

	"weather-dash/internal/domain/model"
)

type fixedHealthGateway struct {
	status model.HealthStatus
}

func (f fixedHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

func TestCheckHealthAllUp(t *testing.T) {
	uc := NewHealthUseCase(fixedHealthGateway{model.StatusUp}, fixedHealthGateway{model.StatusUp})

	response := uc.CheckHealth()

	if response.Status != model.StatusUp {
		t.Fatalf("expected UP, got %q", response.Status)
	}
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	uc := NewHealthUseCase(fixedHealthGateway{model.StatusDown}, fixedHealthGateway{model.StatusUp})

	response := uc.CheckHealth()

	if response.Status != model.StatusDown {
		t.Fatalf("expected DOWN when the database is down, got %q", response.Status)
	}
}

func TestCheckHealthUnconfiguredCacheStaysUp(t *testing.T) {
	uc := NewHealthUseCase(fixedHealthGateway{model.StatusUp}, fixedHealthGateway{model.StatusUnknown})

	response := uc.CheckHealth()

	if response.Status != model.StatusUp {
		t.Fatalf("expected UP with an unconfigured cache, got %q", response.Status)
	}
	if response.Cache.Status != model.StatusUnknown {
		t.Fatalf("expected cache status UNKNOWN, got %q", response.Cache.Status)
	}
}

func TestCheckHealthCacheDown(t *testing.T) {
	uc := NewHealthUseCase(fixedHealthGateway{model.StatusUp}, fixedHealthGateway{model.StatusDown})

	response := uc.CheckHealth()

	if response.Status != model.StatusDown {
		t.Fatalf("expected DOWN when the cache is down, got %q", response.Status)
	}
}
