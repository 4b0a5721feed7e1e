package numberutils

import "strconv"

// ToFloat64WithError converts the given string to a float64 and returns any
// error that occurred during conversion.
func ToFloat64WithError(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ToFloat64WithDefault converts the given string to a float64.
// If the string cannot be converted, it returns the provided default value.
func ToFloat64WithDefault(s string, defaultVal float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return defaultVal
}
