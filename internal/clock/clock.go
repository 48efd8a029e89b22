// Package clock lets services read the current time through an interface
// so tests can pin "today".
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

var (
	_ Clock = Real{}
	_ Clock = Fixed{}
)
