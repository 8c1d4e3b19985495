package clock

import (
	"sync"
	"time"
)

// Clock allows injecting time into business functions.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Fake is a deterministic, advanceable clock for tests.
type Fake struct {
	mu      sync.Mutex
	current time.Time
}

// NewFake creates a Fake set to the given time.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t.UTC()}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Advance moves the fake clock forward by the given duration.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}

// Set changes the fake clock to a specific time.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t.UTC()
}

var (
	_ Clock = systemClock{}
	_ Clock = fixedClock{}
	_ Clock = (*Fake)(nil)
)
