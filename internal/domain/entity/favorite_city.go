package entity

// FavoriteCity is a persisted favorite, keyed by the "<city>-<country>"
// composite so re-adding the same pair upserts instead of duplicating.
type FavoriteCity struct {
	Key     string `json:"key" gorm:"primaryKey"`
	City    string `json:"city"`
	Country string `json:"country"`
	AddedAt int64  `json:"addedAt"`
}

// FavoriteKey builds the composite key for a (city, country) pair.
func FavoriteKey(city, country string) string {
	return city + "-" + country
}
