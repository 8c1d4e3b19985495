package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/joao-fontenele/storefront-core/internal/domain"
)

// declinePrefix marks test cards that always decline, mirroring the
// designated-failure cards of real sandbox gateways.
const declinePrefix = "0000"

var ErrInvalidAmount = errors.New("payment: amount must not be negative")

// Sandbox is a deterministic in-process charger used when no gateway is
// wired. It never moves money.
type Sandbox struct{}

func NewSandbox() *Sandbox {
	return &Sandbox{}
}

func (*Sandbox) Charge(_ context.Context, method domain.PaymentMethod, amount float64) (domain.ChargeResult, error) {
	if amount < 0 {
		return domain.ChargeResult{}, ErrInvalidAmount
	}

	if method.CardNumber == "" || strings.HasPrefix(method.CardNumber, declinePrefix) {
		return domain.ChargeResult{Status: domain.ChargeStatusFailed}, nil
	}

	return domain.ChargeResult{Status: domain.ChargeStatusSuccess}, nil
}
