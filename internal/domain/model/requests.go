package model

// ChangeCityRequest selects a new city on the dashboard.
type ChangeCityRequest struct {
	City string `json:"city"`
}

// ChangeDisplayModeRequest switches the rendered detail level.
type ChangeDisplayModeRequest struct {
	Mode string `json:"mode"`
}

// ChangeRefreshRateRequest sets the automatic refresh interval.
type ChangeRefreshRateRequest struct {
	Minutes int `json:"minutes"`
}

// FavoriteCityRequest adds or removes a favorite city.
type FavoriteCityRequest struct {
	City    string `json:"city"`
	Country string `json:"country"`
}
