package api

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttle is the admission-control policy on outbound forecast calls: at
// most one call per cooldown window, and a call arriving inside the window is
// rejected immediately rather than queued. Each gateway owns its Throttle so
// tests can construct and reset the policy deterministically.
type Throttle struct {
	limiter  *rate.Limiter
	cooldown time.Duration
}

// NewThrottle creates a throttle admitting one call per cooldown window.
func NewThrottle(cooldown time.Duration) *Throttle {
	if cooldown <= 0 {
		cooldown = 5 * time.Second
	}
	return &Throttle{
		limiter:  rate.NewLimiter(rate.Every(cooldown), 1),
		cooldown: cooldown,
	}
}

// Allow reports whether a call may proceed now. It consumes the window's
// single slot when it returns true.
func (t *Throttle) Allow() bool {
	return t.limiter.Allow()
}

// Cooldown returns the configured cooldown window.
func (t *Throttle) Cooldown() time.Duration {
	return t.cooldown
}
