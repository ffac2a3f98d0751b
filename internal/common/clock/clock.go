package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/spyglass/internal/common/clock Clock

// Clock stamps delivered notifications
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock in UTC
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current UTC time without the monotonic reading, so a
// stamp compares equal after a round trip through the notification log
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
