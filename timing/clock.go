package timing

import "time"

// Timer is a handle to a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock provides time reading and delayed-callback scheduling. The
// indirection lets tests drive every timer from a fake time source.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// SystemClock is the Clock used on real hardware.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
