// Package timer provides the delayed-action capability the bubble scheduler
// runs on: a Clock that schedules callbacks, a manual clock for deterministic
// runs, and Group, which cancels a set of outstanding callbacks at once.
package timer

import "time"

// Timer is a handle to one scheduled callback. Stop reports whether it
// prevented the callback from firing. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// NewRealClock returns a Clock backed by the runtime timers. Callbacks run on
// their own goroutine, as with time.AfterFunc.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
