package weather

import (
	"math"
	"time"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// WindDirection maps a wind bearing in degrees to a 16-point compass label
// using round(deg/22.5) mod 16, so 360 wraps back to N.
func WindDirection(deg float64) string {
	index := int(math.Round(deg/22.5)) % 16
	if index < 0 {
		index += 16
	}
	return compassPoints[index]
}

// FormatLocalTime renders a UTC unix timestamp as the wall-clock time in the
// zone given by the UTC offset in seconds, e.g. "6:42 AM". The viewer's local
// zone plays no part.
func FormatLocalTime(unix int64, offsetSeconds int) string {
	zone := time.FixedZone("", offsetSeconds)
	return time.Unix(unix, 0).In(zone).Format("3:04 PM")
}
