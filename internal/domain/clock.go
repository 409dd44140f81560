package domain

import "time"

// Clock is the only time source the engines consult. Injectable so engine
// behavior is deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
