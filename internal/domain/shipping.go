package domain

type ShippingQuote struct {
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimated_days"`
}
