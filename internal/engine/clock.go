package engine

import "time"

const dayLayout = "2006-01-02"

// Clock abstracts wall time so day-boundary logic is testable.
type Clock interface {
	Now() time.Time
	// Today returns the current local day key (see DayKey).
	Today() string
}

// DayKey collapses a timestamp to its local calendar day.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
func (systemClock) Today() string  { return DayKey(time.Now()) }

// SystemClock returns the wall-clock implementation.
func SystemClock() Clock { return systemClock{} }
