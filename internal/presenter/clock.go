package presenter

import "time"

// Timer is the cancellable handle of a scheduled auto-dismiss.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so auto-dismiss can be driven in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock is the wall clock.
func RealClock() Clock {
	return realClock{}
}
