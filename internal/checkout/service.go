package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joao-fontenele/storefront-core/internal/domain"
)

// PaymentCharger attempts a single charge against a payment method. A
// declined charge is reported through ChargeResult; a returned error means
// the charger itself failed and no outcome is known.
type PaymentCharger interface {
	Charge(ctx context.Context, method domain.PaymentMethod, amount float64) (domain.ChargeResult, error)
}

const errCodePayment = "payment_error"

type SubmitResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Service struct {
	charger PaymentCharger
	logger  *slog.Logger
}

func NewService(charger PaymentCharger, logger *slog.Logger) *Service {
	return &Service{
		charger: charger,
		logger:  logger,
	}
}

// SubmitOrder charges the order total exactly once. A successful charge
// yields a success result, a declined charge yields a payment_error
// result, and a charger fault propagates as an error with no result.
func (s *Service) SubmitOrder(ctx context.Context, order domain.Order, method domain.PaymentMethod) (SubmitResult, error) {
	result, err := s.charger.Charge(ctx, method, order.TotalAmount)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("charge %v: %w", order.TotalAmount, err)
	}

	if result.Status != domain.ChargeStatusSuccess {
		s.logger.Info("charge declined", "status", result.Status, "amount", order.TotalAmount)
		return SubmitResult{Success: false, Error: errCodePayment}, nil
	}

	s.logger.Info("order submitted", "amount", order.TotalAmount)
	return SubmitResult{Success: true}, nil
}
