package domain

import "github.com/shopspring/decimal"

// ExchangeSimulation is the result of a non-binding conversion preview.
type ExchangeSimulation struct {
	Direction   Operation       `json:"direction"`
	Code        string          `json:"code"`
	Rate        float64         `json:"rate"` // EUR -> Code multiplier applied
	AmountEuro  decimal.Decimal `json:"amountEuro"`
	AmountLocal decimal.Decimal `json:"amountLocal"`
}

// LineWarning flags a submitted currency line that could not be priced and was left out.
type LineWarning struct {
	Line     int    `json:"line"` // 1-based position in the submission
	Currency string `json:"currency"`
	Reason   string `json:"reason"`
}

// Line warning reasons.
const (
	ReasonRateUnavailable     = "rate_unavailable"
	ReasonUnsupportedCurrency = "unsupported_currency"
)
