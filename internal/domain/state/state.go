// Package state holds the single authoritative application state and its
// reducer. All mutation flows through Store.Dispatch; I/O happens elsewhere,
// in the orchestration use case, before an action is dispatched.
package state

import "weather-dash/internal/domain/model"

// ApplicationState is the full dashboard state. The zero value is not valid,
// use InitialState.
type ApplicationState struct {
	SelectedCity       string                 `json:"selectedCity"`
	WeatherData        *model.WeatherSnapshot `json:"weatherData"`
	Unit               model.Unit             `json:"unit"`
	RefreshRateMinutes int                    `json:"refreshRateMinutes"`
	DisplayMode        model.DisplayMode      `json:"displayMode"`
	ErrorMessage       *string                `json:"errorMessage"`
}

// InitialState returns the state the application starts with.
func InitialState() ApplicationState {
	return ApplicationState{
		SelectedCity:       "",
		WeatherData:        nil,
		Unit:               model.UnitMetric,
		RefreshRateMinutes: 30,
		DisplayMode:        model.DisplayDetailed,
		ErrorMessage:       nil,
	}
}

// Settings projects the fetch-relevant preferences out of the state.
func (s ApplicationState) Settings() model.Settings {
	return model.Settings{
		Units:              s.Unit,
		RefreshRateMinutes: s.RefreshRateMinutes,
		DisplayMode:        s.DisplayMode,
	}
}

// ActionType identifies a state transition. The set is closed; unknown types
// are ignored by the reducer.
type ActionType string

const (
	FetchWeather      ActionType = "FETCH_WEATHER"
	ChangeCity        ActionType = "CHANGE_CITY"
	ToggleUnit        ActionType = "TOGGLE_UNIT"
	ChangeDisplayMode ActionType = "CHANGE_DISPLAY_MODE"
	ChangeRefreshRate ActionType = "CHANGE_REFRESH_RATE"
	SetError          ActionType = "SET_ERROR"
	ClearError        ActionType = "CLEAR_ERROR"
)

// Action carries a transition type and its payload. Only the field matching
// the type is read.
type Action struct {
	Type               ActionType
	Snapshot           *model.WeatherSnapshot
	City               string
	DisplayMode        model.DisplayMode
	RefreshRateMinutes int
	ErrorMessage       string
}

// FetchWeatherAction replaces the weather snapshot and clears any error.
func FetchWeatherAction(snapshot *model.WeatherSnapshot) Action {
	return Action{Type: FetchWeather, Snapshot: snapshot}
}

// ChangeCityAction replaces the selected city. It does not itself trigger a
// fetch; that is the caller's responsibility.
func ChangeCityAction(city string) Action {
	return Action{Type: ChangeCity, City: city}
}

// ToggleUnitAction flips metric and imperial.
func ToggleUnitAction() Action {
	return Action{Type: ToggleUnit}
}

// ChangeDisplayModeAction sets the display mode.
func ChangeDisplayModeAction(mode model.DisplayMode) Action {
	return Action{Type: ChangeDisplayMode, DisplayMode: mode}
}

// ChangeRefreshRateAction sets the auto-refresh interval in minutes.
func ChangeRefreshRateAction(minutes int) Action {
	return Action{Type: ChangeRefreshRate, RefreshRateMinutes: minutes}
}

// SetErrorAction sets the user-facing error message, leaving other fields untouched.
func SetErrorAction(message string) Action {
	return Action{Type: SetError, ErrorMessage: message}
}

// ClearErrorAction resets the error message to nil.
func ClearErrorAction() Action {
	return Action{Type: ClearError}
}
