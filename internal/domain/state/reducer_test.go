package state

import (
	"testing"

	"weather-dash/internal/domain/model"
)

func TestReduceFetchWeatherReplacesSnapshotAndClearsError(t *testing.T) {
	message := "previous failure"
	s := InitialState()
	s.ErrorMessage = &message

	snapshot := &model.WeatherSnapshot{City: "London", Country: "GB", Temperature: 12.5}
	next := Reduce(s, FetchWeatherAction(snapshot))

	if next.WeatherData != snapshot {
		t.Fatalf("expected snapshot to be replaced")
	}
	if next.ErrorMessage != nil {
		t.Fatalf("expected error to be cleared, got %q", *next.ErrorMessage)
	}
}

func TestReduceChangeCity(t *testing.T) {
	next := Reduce(InitialState(), ChangeCityAction("Tokyo"))

	if next.SelectedCity != "Tokyo" {
		t.Fatalf("expected selected city Tokyo, got %q", next.SelectedCity)
	}
	if next.WeatherData != nil {
		t.Fatalf("changing the city must not touch weather data")
	}
}

func TestReduceToggleUnitRoundTrips(t *testing.T) {
	s := InitialState()
	if s.Unit != model.UnitMetric {
		t.Fatalf("expected initial unit metric, got %q", s.Unit)
	}

	s = Reduce(s, ToggleUnitAction())
	if s.Unit != model.UnitImperial {
		t.Fatalf("expected imperial after one toggle, got %q", s.Unit)
	}

	s = Reduce(s, ToggleUnitAction())
	if s.Unit != model.UnitMetric {
		t.Fatalf("expected metric after two toggles, got %q", s.Unit)
	}
}

func TestReduceChangeDisplayModeAndRefreshRate(t *testing.T) {
	s := Reduce(InitialState(), ChangeDisplayModeAction(model.DisplayCompact))
	if s.DisplayMode != model.DisplayCompact {
		t.Fatalf("expected compact display mode, got %q", s.DisplayMode)
	}

	s = Reduce(s, ChangeRefreshRateAction(5))
	if s.RefreshRateMinutes != 5 {
		t.Fatalf("expected refresh rate 5, got %d", s.RefreshRateMinutes)
	}
}

func TestReduceSetAndClearError(t *testing.T) {
	s := Reduce(InitialState(), SetErrorAction("boom"))
	if s.ErrorMessage == nil || *s.ErrorMessage != "boom" {
		t.Fatalf("expected error message boom, got %v", s.ErrorMessage)
	}

	s = Reduce(s, ClearErrorAction())
	if s.ErrorMessage != nil {
		t.Fatalf("expected error cleared, got %q", *s.ErrorMessage)
	}
}

func TestReduceUnknownActionReturnsStateUnchanged(t *testing.T) {
	s := InitialState()
	s.SelectedCity = "Paris"

	next := Reduce(s, Action{Type: ActionType("NOT_A_REAL_ACTION")})

	if next != s {
		t.Fatalf("expected state unchanged for unknown action")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := InitialState()
	s.SelectedCity = "Oslo"

	_ = Reduce(s, ChangeCityAction("Bergen"))

	if s.SelectedCity != "Oslo" {
		t.Fatalf("reducer mutated its input state")
	}
}
