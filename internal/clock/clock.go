package clock

import (
	"sync"
	"time"
)

// Clock is injected wherever created_at/updated_at stamps are taken.
type Clock interface {
	Now() time.Time
}

type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// System returns UTC wall time truncated to milliseconds, the precision
// Mongo keeps for dates.
func System() Clock {
	return Func(func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) })
}

// Manual is a test clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(t time.Time) *Manual {
	return &Manual{now: t.UTC()}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
