package clock

import "time"

// Clock abstracts the current time so that session timing and goal
// reconciliation can be tested against a controlled clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// Fixed is a settable Clock for tests. The zero value reports the zero time;
// use Set or Advance to move it.
type Fixed struct {
	Current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{Current: t}
}

func (f *Fixed) Now() time.Time {
	return f.Current
}

func (f *Fixed) Set(t time.Time) {
	f.Current = t
}

func (f *Fixed) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
