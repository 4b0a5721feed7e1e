package model

// DashboardResponse is the aggregate view served to the presentation layer:
// the current state with both forecast projections and the in-flight flags.
type DashboardResponse struct {
	SelectedCity       string                `json:"selectedCity"`
	Weather            *WeatherSnapshot      `json:"weather"`
	Hourly             []HourlyForecastEntry `json:"hourly"`
	Daily              []DailyForecastEntry  `json:"daily"`
	Settings           Settings              `json:"settings"`
	Loading            bool                  `json:"loading"`
	DetectingLocation  bool                  `json:"detectingLocation"`
	ErrorMessage       *string               `json:"errorMessage"`
	LastUpdatedRFC3339 string                `json:"lastUpdated,omitempty"`
}
