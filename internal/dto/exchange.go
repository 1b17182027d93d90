package dto

import (
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SimulateRequest asks for a conversion preview. Amounts are free text ("1 234,50").
type SimulateRequest struct {
	Direction   string `json:"direction" binding:"required,oneof=buy sell"`
	Code        string `json:"code" binding:"required"`
	AmountEur   string `json:"amountEur"`
	AmountLocal string `json:"amountLocal"`
}

// SimulateResponse is the computed conversion preview.
type SimulateResponse struct {
	Direction   string          `json:"direction"`
	Code        string          `json:"code"`
	Rate        float64         `json:"rate"`
	AmountEur   decimal.Decimal `json:"amountEur"`
	AmountLocal decimal.Decimal `json:"amountLocal"`
}

// ToSimulateResponse converts a domain.ExchangeSimulation to SimulateResponse DTO
func ToSimulateResponse(s *domain.ExchangeSimulation) SimulateResponse {
	return SimulateResponse{
		Direction:   string(s.Direction),
		Code:        s.Code,
		Rate:        s.Rate,
		AmountEur:   s.AmountEuro,
		AmountLocal: s.AmountLocal,
	}
}
