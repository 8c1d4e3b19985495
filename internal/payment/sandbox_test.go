package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/joao-fontenele/storefront-core/internal/domain"
)

func TestSandbox_Charge(t *testing.T) {
	sandbox := NewSandbox()

	t.Run("approves regular cards", func(t *testing.T) {
		result, err := sandbox.Charge(context.Background(), domain.PaymentMethod{CardNumber: "4111111111111111"}, 25)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Status != domain.ChargeStatusSuccess {
			t.Errorf("expected success, got %s", result.Status)
		}
	})

	t.Run("declines the designated test prefix", func(t *testing.T) {
		result, err := sandbox.Charge(context.Background(), domain.PaymentMethod{CardNumber: "0000111122223333"}, 25)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Status != domain.ChargeStatusFailed {
			t.Errorf("expected failed, got %s", result.Status)
		}
	})

	t.Run("declines missing card number", func(t *testing.T) {
		result, err := sandbox.Charge(context.Background(), domain.PaymentMethod{}, 25)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Status != domain.ChargeStatusFailed {
			t.Errorf("expected failed, got %s", result.Status)
		}
	})

	t.Run("negative amount is a fault, not a decline", func(t *testing.T) {
		_, err := sandbox.Charge(context.Background(), domain.PaymentMethod{CardNumber: "4111111111111111"}, -1)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
