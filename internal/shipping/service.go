package shipping

import (
	"context"
	"fmt"
	"strconv"

	"github.com/joao-fontenele/storefront-core/internal/domain"
)

// QuoteSource provides shipping quotes per destination. A nil quote with
// nil error means no quote is available for that destination.
type QuoteSource interface {
	Quote(ctx context.Context, destination string) (*domain.ShippingQuote, error)
}

const unavailableMessage = "Shipping unavailable"

type Service struct {
	quotes QuoteSource
}

func NewService(quotes QuoteSource) *Service {
	return &Service{quotes: quotes}
}

// Info returns a human-readable shipping summary for the destination, or
// an "unavailable" message when the source has no quote.
func (s *Service) Info(ctx context.Context, destination string) (string, error) {
	quote, err := s.quotes.Quote(ctx, destination)
	if err != nil {
		return "", fmt.Errorf("fetch quote for %s: %w", destination, err)
	}

	if quote == nil {
		return unavailableMessage, nil
	}

	cost := strconv.FormatFloat(quote.Cost, 'f', -1, 64)
	return fmt.Sprintf("Shipping cost: $%s (%d days)", cost, quote.EstimatedDays), nil
}
