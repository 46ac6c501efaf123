package clock

import "time"

// Clock supplies the current wall-clock time. Availability and partitioning
// decisions take it as a dependency so tests can pin "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by the system time.
func New() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }
