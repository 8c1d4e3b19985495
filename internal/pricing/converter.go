package pricing

import (
	"context"
	"fmt"
)

// RateSource provides exchange rates between two currency codes.
type RateSource interface {
	Rate(ctx context.Context, base, target string) (float64, error)
}

const defaultBaseCurrency = "USD"

type Converter struct {
	rates RateSource
	base  string
}

func NewConverter(rates RateSource, opts ...ConverterOption) *Converter {
	c := &Converter{
		rates: rates,
		base:  defaultBaseCurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ConverterOption func(*Converter)

// WithBaseCurrency overrides the currency amounts are priced in before
// conversion.
func WithBaseCurrency(code string) ConverterOption {
	return func(c *Converter) {
		if code != "" {
			c.base = code
		}
	}
}

// PriceIn converts amount from the base currency into target using the
// rate source's current rate. The multiplication is exact; rounding is
// the caller's concern.
func (c *Converter) PriceIn(ctx context.Context, amount float64, target string) (float64, error) {
	rate, err := c.rates.Rate(ctx, c.base, target)
	if err != nil {
		return 0, fmt.Errorf("fetch rate %s->%s: %w", c.base, target, err)
	}
	return amount * rate, nil
}
