package gpx

import (
	"fmt"
	"time"
)

// Window is a closed time span [Start, End] in local time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, boundaries included.
// An inverted window (End before Start) contains nothing.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Span returns End minus Start.
func (w Window) Span() time.Duration {
	return w.End.Sub(w.Start)
}

// IsZero reports whether both bounds are unset.
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
