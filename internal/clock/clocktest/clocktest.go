// Package clocktest provides scoped clock overrides for tests.
package clocktest

import (
	"testing"

	"github.com/joao-fontenele/storefront-core/internal/clock"
)

// Override installs c as the backing clock of s for the duration of the
// test, restoring the previous clock on cleanup so the override cannot
// leak into other test cases.
func Override(t testing.TB, s *clock.Swappable, c clock.Clock) {
	t.Helper()
	restore := s.Swap(c)
	t.Cleanup(restore)
}
