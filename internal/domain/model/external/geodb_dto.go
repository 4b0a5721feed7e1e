package external

// CityRefResponse represents the GeoDB cities listing used for the city
// reference list behind search autocomplete
type CityRefResponse struct {
	Data     []CityRefEntry `json:"data"`
	Metadata struct {
		CurrentOffset int `json:"currentOffset"`
		TotalCount    int `json:"totalCount"`
	} `json:"metadata"`
}

// CityRefEntry represents a single city in the GeoDB listing
type CityRefEntry struct {
	ID          int     `json:"id"`
	City        string  `json:"city"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Population  int     `json:"population"`
}

// GeoDBErrorResponse represents error payloads from the GeoDB API
type GeoDBErrorResponse struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}
