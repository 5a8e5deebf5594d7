package inventory

import "time"

// Clock supplies the current time for lastTransaction stamping.
//
// The Store stamps "now" on every mutation; it does not defend against a
// clock that moves backwards. Inject a fixed clock in tests for
// deterministic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
