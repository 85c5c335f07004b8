package mock

import (
	"sync"
	"time"
)

// Time is a settable clock handed to the use cases that depend on the current
// date, so scenarios can pin the month the aggregator and dashboard look at.
type Time struct {
	mu      sync.Mutex
	current time.Time
	setAt   time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{current: now, setAt: now}
}

// SetCurrentTime pins the clock to the given instant. Time continues to
// advance from there at the normal rate.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.setAt = time.Now()
}

// Now returns the pinned instant plus the real time elapsed since it was set.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Add(time.Since(t.setAt))
}
