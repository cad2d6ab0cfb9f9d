package kernel

import "time"

// Clock supplies the current time to anything that stamps dates.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local time zone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Today returns the current calendar date according to c.
func Today(c Clock) Date {
	return DateOf(c.Now())
}
