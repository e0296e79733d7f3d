package engine

import "time"

// TimeProvider supplies the wall clock to the scheduler
// Injected so tests can drive ticks with a manual clock
type TimeProvider interface {
	Now() time.Time
}

type monotonicTimeProvider struct{}

// NewTimeProvider creates the real monotonic clock provider
func NewTimeProvider() TimeProvider {
	return monotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (monotonicTimeProvider) Now() time.Time {
	return time.Now()
}
