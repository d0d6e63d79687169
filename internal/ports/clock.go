package ports

import "time"

// Clock provides the current wall-clock time.
// This is a driven port (implemented by adapters).
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now returns the function's result.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)
