package engine

import "time"

// Clock abstracts the time source so hosts and tests control playback
// timing
type Clock interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic clock
// readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}
