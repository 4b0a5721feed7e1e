package model

// Unit is the measurement system requested from the forecast provider.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// Toggle returns the opposite unit system.
func (u Unit) Toggle() Unit {
	if u == UnitMetric {
		return UnitImperial
	}
	return UnitMetric
}

// DisplayMode selects how much detail the presentation layer renders.
type DisplayMode string

const (
	DisplayDetailed DisplayMode = "detailed"
	DisplayCompact  DisplayMode = "compact"
)

// PartOfDay is the repaired two-valued form of the provider's part-of-day flag.
type PartOfDay string

const (
	PartOfDayDay   PartOfDay = "d"
	PartOfDayNight PartOfDay = "n"
)

// WeatherSnapshot is the current-conditions record for the selected location.
// It is immutable and replaced wholesale on each successful fetch.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	// WindDirection is a 16-point compass label derived from the wind degree.
	WindDirection string `json:"windDirection"`
	Pressure      int    `json:"pressure"`
	// Visibility is in kilometers (provider reports meters).
	Visibility float64 `json:"visibility"`
	// ObservedAt is the unix timestamp of the first forecast slot.
	ObservedAt int64 `json:"observedAt"`
	// TimezoneOffset is the location's UTC offset in seconds.
	TimezoneOffset int `json:"timezoneOffset"`
	// Sunrise and Sunset are wall-clock times rendered in the location's zone.
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// DailyForecastEntry is one day of the daily projection: at most one entry per
// calendar day, ascending, capped at five.
type DailyForecastEntry struct {
	Date        int64   `json:"date"`
	Temp        float64 `json:"temp"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// HourlyForecastEntry is one slot of the hourly projection: a verbatim prefix
// of the provider timeline (3-hour granularity), capped at 24 entries.
type HourlyForecastEntry struct {
	Time        int64   `json:"time"`
	Temp        float64 `json:"temp"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

// Settings are the fetch-relevant user preferences.
type Settings struct {
	Units              Unit        `json:"units"`
	RefreshRateMinutes int         `json:"refreshRateMinutes"`
	DisplayMode        DisplayMode `json:"displayMode"`
}

// FavoriteCity is a (city, country) pair exposed by the favorites store.
type FavoriteCity struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// CitySuggestion is one autocomplete candidate from the city reference list.
type CitySuggestion struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
