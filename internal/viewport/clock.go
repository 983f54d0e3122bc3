package viewport

import "time"

// Clock supplies the current time. Tests substitute a controllable one.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
