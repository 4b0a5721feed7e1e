package weather

import (
	"time"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/model/external"
)

const (
	maxHourlyEntries = 24
	maxDailyEntries  = 5
)

// HourlyProjection takes the first 24 raw provider slots verbatim. The
// provider timeline is 3-hourly; it is not resampled.
func HourlyProjection(entries []external.ForecastEntry) []model.HourlyForecastEntry {
	limit := len(entries)
	if limit > maxHourlyEntries {
		limit = maxHourlyEntries
	}

	projection := make([]model.HourlyForecastEntry, 0, limit)
	for _, entry := range entries[:limit] {
		description, icon := conditionOf(entry)
		projection = append(projection, model.HourlyForecastEntry{
			Time:        entry.Dt,
			Temp:        entry.Main.Temp,
			Icon:        icon,
			Description: description,
		})
	}
	return projection
}

// DailyProjection keeps the first provider entry for each distinct calendar
// day, capped at 5 days, preserving provider order. Day boundaries are
// computed in the location's zone via its UTC offset.
func DailyProjection(entries []external.ForecastEntry, offsetSeconds int) []model.DailyForecastEntry {
	zone := time.FixedZone("", offsetSeconds)
	seenDays := make(map[string]struct{}, maxDailyEntries)

	var projection []model.DailyForecastEntry
	for _, entry := range entries {
		day := time.Unix(entry.Dt, 0).In(zone).Format("2006-01-02")
		if _, seen := seenDays[day]; seen {
			continue
		}
		if len(projection) >= maxDailyEntries {
			break
		}
		seenDays[day] = struct{}{}

		description, icon := conditionOf(entry)
		projection = append(projection, model.DailyForecastEntry{
			Date:        entry.Dt,
			Temp:        entry.Main.Temp,
			TempMin:     entry.Main.TempMin,
			TempMax:     entry.Main.TempMax,
			Description: description,
			Icon:        icon,
		})
	}
	return projection
}

// BuildSnapshot derives the current-conditions record from the first forecast
// slot and the response's city block.
func BuildSnapshot(response *external.ForecastResponse) model.WeatherSnapshot {
	first := response.List[0]
	description, icon := conditionOf(first)

	return model.WeatherSnapshot{
		City:           response.City.Name,
		Country:        response.City.Country,
		Temperature:    first.Main.Temp,
		Description:    description,
		Icon:           icon,
		Humidity:       first.Main.Humidity,
		WindSpeed:      first.Wind.Speed,
		WindDirection:  WindDirection(first.Wind.Deg),
		Pressure:       first.Main.Pressure,
		Visibility:     float64(first.Visibility) / 1000,
		ObservedAt:     first.Dt,
		TimezoneOffset: response.City.Timezone,
		Sunrise:        FormatLocalTime(response.City.Sunrise, response.City.Timezone),
		Sunset:         FormatLocalTime(response.City.Sunset, response.City.Timezone),
	}
}

// conditionOf guards against provider entries with an empty weather array.
func conditionOf(entry external.ForecastEntry) (description, icon string) {
	if len(entry.Weather) == 0 {
		return "", ""
	}
	return entry.Weather[0].Description, entry.Weather[0].Icon
}
