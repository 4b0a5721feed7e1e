package weather

import (
	"testing"

	"weather-dash/internal/domain/model/external"
)

const threeHours = 3 * 60 * 60

// slot builds a forecast entry at the given unix time with one weather condition.
func slot(dt int64, temp float64, description, icon string) external.ForecastEntry {
	var entry external.ForecastEntry
	entry.Dt = dt
	entry.Main.Temp = temp
	entry.Main.TempMin = temp - 2
	entry.Main.TempMax = temp + 2
	entry.Weather = append(entry.Weather, struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{800, "Clear", description, icon})
	return entry
}

// timeline builds n consecutive 3-hour slots starting at start.
func timeline(start int64, n int) []external.ForecastEntry {
	entries := make([]external.ForecastEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, slot(start+int64(i*threeHours), 20, "clear sky", "01d"))
	}
	return entries
}

func TestHourlyProjectionIsVerbatimPrefix(t *testing.T) {
	// 2023-06-01 00:00 UTC
	entries := timeline(1685577600, 40)

	hourly := HourlyProjection(entries)

	if len(hourly) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(hourly))
	}
	for i, h := range hourly {
		if h.Time != entries[i].Dt {
			t.Fatalf("entry %d reordered: got %d, want %d", i, h.Time, entries[i].Dt)
		}
	}
}

func TestHourlyProjectionShortTimeline(t *testing.T) {
	entries := timeline(1685577600, 5)

	hourly := HourlyProjection(entries)

	if len(hourly) != 5 {
		t.Fatalf("expected all 5 entries, got %d", len(hourly))
	}
}

func TestDailyProjectionOneEntryPerDayCappedAtFive(t *testing.T) {
	// 8 slots per day over 7 days
	entries := timeline(1685577600, 8*7)

	daily := DailyProjection(entries, 0)

	if len(daily) != 5 {
		t.Fatalf("expected 5 daily entries, got %d", len(daily))
	}
	for i := 1; i < len(daily); i++ {
		if daily[i].Date <= daily[i-1].Date {
			t.Fatalf("daily entries out of order at %d", i)
		}
		if daily[i].Date-daily[i-1].Date != 24*60*60 {
			t.Fatalf("expected consecutive days, gap %d seconds", daily[i].Date-daily[i-1].Date)
		}
	}
}

func TestDailyProjectionBucketsInLocationZone(t *testing.T) {
	// 23:00 and 01:00 UTC straddle midnight in UTC but sit 12 hours ahead in
	// a +12h zone, landing on the same local day versus different local days.
	first := int64(1685660400)           // 23:00 UTC
	second := first + 2*60*60            // 01:00 UTC next day
	entries := []external.ForecastEntry{slot(first, 18, "clear sky", "01n"), slot(second, 16, "clear sky", "01n")}

	utcDaily := DailyProjection(entries, 0)
	if len(utcDaily) != 2 {
		t.Fatalf("expected 2 daily entries in UTC, got %d", len(utcDaily))
	}

	aheadDaily := DailyProjection(entries, 12*60*60)
	if len(aheadDaily) != 1 {
		t.Fatalf("expected 1 daily entry in +12h zone, got %d", len(aheadDaily))
	}
}

func TestBuildSnapshotDerivesFromFirstSlot(t *testing.T) {
	response := &external.ForecastResponse{
		Cod:  "200",
		List: timeline(1685577600, 8),
	}
	response.List[0].Main.Humidity = 65
	response.List[0].Main.Pressure = 1013
	response.List[0].Wind.Speed = 4.2
	response.List[0].Wind.Deg = 90
	response.List[0].Visibility = 8000
	response.City.Name = "Auckland"
	response.City.Country = "NZ"
	response.City.Timezone = 12 * 60 * 60
	response.City.Sunrise = 1685648100 // 19:35 UTC, 07:35 local
	response.City.Sunset = 1685683920  // 05:32 UTC next day, 17:32 local

	snapshot := BuildSnapshot(response)

	if snapshot.City != "Auckland" || snapshot.Country != "NZ" {
		t.Fatalf("unexpected city block: %s, %s", snapshot.City, snapshot.Country)
	}
	if snapshot.Temperature != 20 {
		t.Fatalf("expected temperature from first slot, got %v", snapshot.Temperature)
	}
	if snapshot.Visibility != 8 {
		t.Fatalf("expected visibility 8 km, got %v", snapshot.Visibility)
	}
	if snapshot.WindDirection != "E" {
		t.Fatalf("expected wind direction E for 90 degrees, got %q", snapshot.WindDirection)
	}
	if snapshot.Sunrise != "7:35 AM" {
		t.Fatalf("expected sunrise rendered in the location zone, got %q", snapshot.Sunrise)
	}
	if snapshot.Sunset != "5:32 PM" {
		t.Fatalf("expected sunset rendered in the location zone, got %q", snapshot.Sunset)
	}
}

func TestConditionOfEmptyWeatherArray(t *testing.T) {
	var entry external.ForecastEntry
	entry.Dt = 1685577600

	hourly := HourlyProjection([]external.ForecastEntry{entry})

	if len(hourly) != 1 {
		t.Fatalf("expected the entry kept, got %d", len(hourly))
	}
	if hourly[0].Description != "" || hourly[0].Icon != "" {
		t.Fatalf("expected empty condition, got %q %q", hourly[0].Description, hourly[0].Icon)
	}
}

func TestWindDirection(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{340, "NNW"},
		{350, "N"},
		{360, "N"},
	}
	for _, tc := range cases {
		if got := WindDirection(tc.deg); got != tc.want {
			t.Errorf("WindDirection(%v) = %q, want %q", tc.deg, got, tc.want)
		}
	}
}

func TestFormatLocalTimeUsesOffsetNotViewerZone(t *testing.T) {
	// 2023-06-01 00:00 UTC at +5h30m renders as 5:30 AM regardless of the
	// zone the test runs in.
	if got := FormatLocalTime(1685577600, 5*60*60+30*60); got != "5:30 AM" {
		t.Fatalf("expected 5:30 AM, got %q", got)
	}
	if got := FormatLocalTime(1685577600, -3*60*60); got != "9:00 PM" {
		t.Fatalf("expected 9:00 PM, got %q", got)
	}
}
