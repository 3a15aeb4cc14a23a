package booking

import "time"

// Clock supplies the instant bookings are classified and decided against.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
