package domain

type ChargeStatus string

const (
	ChargeStatusSuccess ChargeStatus = "success"
	ChargeStatusFailed  ChargeStatus = "failed"
)

type Order struct {
	TotalAmount float64 `json:"total_amount"`
}

type PaymentMethod struct {
	CardNumber string `json:"card_number"`
}

type ChargeResult struct {
	Status ChargeStatus `json:"status"`
}
