package state

// Reduce is the pure transition function over the closed action set. It never
// performs I/O and never panics; an unknown action returns the state unchanged.
func Reduce(s ApplicationState, action Action) ApplicationState {
	switch action.Type {
	case FetchWeather:
		s.WeatherData = action.Snapshot
		s.ErrorMessage = nil
		return s

	case ChangeCity:
		s.SelectedCity = action.City
		return s

	case ToggleUnit:
		s.Unit = s.Unit.Toggle()
		return s

	case ChangeDisplayMode:
		s.DisplayMode = action.DisplayMode
		return s

	case ChangeRefreshRate:
		s.RefreshRateMinutes = action.RefreshRateMinutes
		return s

	case SetError:
		message := action.ErrorMessage
		s.ErrorMessage = &message
		return s

	case ClearError:
		s.ErrorMessage = nil
		return s

	default:
		return s
	}
}
