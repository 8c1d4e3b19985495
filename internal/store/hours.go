package store

import (
	"time"

	"github.com/joao-fontenele/storefront-core/internal/clock"
)

const (
	openingHour = 8
	closingHour = 20

	holidayDiscount = 0.2
)

// Hours answers schedule questions off an injected clock. All reads use a
// single reference timezone (UTC) so answers do not depend on the host.
type Hours struct {
	clock clock.Clock
}

func NewHours(clk clock.Clock) *Hours {
	return &Hours{clock: clk}
}

// IsOnline reports whether the store is open right now. The window is
// [08:00, 20:00): open at 08:00 sharp, closed again at 20:00 sharp.
func (h *Hours) IsOnline() bool {
	hour := h.clock.Now().UTC().Hour()
	return hour >= openingHour && hour < closingHour
}

// Discount returns the current storewide discount: 0.2 on December 25
// regardless of year, 0 otherwise.
func (h *Hours) Discount() float64 {
	now := h.clock.Now().UTC()
	if now.Month() == time.December && now.Day() == 25 {
		return holidayDiscount
	}
	return 0
}
