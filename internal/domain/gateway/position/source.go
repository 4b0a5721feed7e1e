// Package position abstracts the "where am I" capability. The browser
// original relied on the platform geolocation API; here the capability is an
// interface so the HTTP IP-geolocation implementation can be swapped for a
// fake in tests or for a real GPS source.
package position

import "context"

// Position is a raw coordinate fix.
type Position struct {
	Lat float64
	Lon float64
}

// Source produces a one-shot current position. Implementations honor the
// context deadline and report failures as apperr.GeolocationError.
type Source interface {
	Current(ctx context.Context) (Position, error)
}
