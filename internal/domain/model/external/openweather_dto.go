package external

// ForecastResponse represents the OpenWeatherMap 5 day / 3 hour forecast response
type ForecastResponse struct {
	Cod     string          `json:"cod"`
	Message float64         `json:"message"`
	Cnt     int             `json:"cnt"`
	List    []ForecastEntry `json:"list"`
	City    ForecastCity    `json:"city"`
}

// ForecastEntry represents a single 3-hour forecast slot
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Visibility int     `json:"visibility"`
	Pop        float64 `json:"pop"`
	Sys        struct {
		// Pod is "d" or "n"; anything else is repaired to "d" during normalization
		Pod string `json:"pod"`
	} `json:"sys"`
	DtTxt string `json:"dt_txt"`
}

// ForecastCity represents the city block of the forecast response
type ForecastCity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Country    string `json:"country"`
	Population int    `json:"population"`
	// Timezone is the UTC offset in seconds
	Timezone int   `json:"timezone"`
	Sunrise  int64 `json:"sunrise"`
	Sunset   int64 `json:"sunset"`
}

// ReverseGeocodingResult represents one entry of the reverse geocoding response
type ReverseGeocodingResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// APIErrorResponse represents error responses from the OpenWeatherMap API
type APIErrorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}
