package clock

import (
	"sync/atomic"
	"time"
)

// Swappable is a process-wide time source whose backing clock can be
// replaced atomically. Every consumer holding the same Swappable observes
// the swap at once, which is what lets a test fix the instant for all
// business functions in one step and restore the real clock afterwards.
type Swappable struct {
	inner atomic.Pointer[Clock]
}

// NewSwappable returns a Swappable initially backed by the given clock.
func NewSwappable(c Clock) *Swappable {
	s := &Swappable{}
	s.inner.Store(&c)
	return s
}

func (s *Swappable) Now() time.Time {
	return (*s.inner.Load()).Now()
}

// Swap replaces the backing clock and returns a restore function that
// reinstalls the previous one. Callers must invoke restore when the
// override's scope ends.
func (s *Swappable) Swap(c Clock) (restore func()) {
	prev := s.inner.Swap(&c)
	return func() {
		s.inner.Store(prev)
	}
}

var _ Clock = (*Swappable)(nil)
