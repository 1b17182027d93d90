package dto

import "github.com/SscSPs/exchange_shop/internal/core/domain"

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	Code                 string  `json:"code"`
	Name                 string  `json:"name"`
	Country              string  `json:"country"`
	Flag                 string  `json:"flag"`
	DefaultSpreadPercent float64 `json:"defaultSpreadPercent"`
}

// ToCurrencyResponse converts a domain.CurrencyMeta to CurrencyResponse DTO
func ToCurrencyResponse(m domain.CurrencyMeta) CurrencyResponse {
	return CurrencyResponse{
		Code:                 m.Code,
		Name:                 m.DisplayName,
		Country:              m.Country,
		Flag:                 m.Flag,
		DefaultSpreadPercent: m.DefaultSpreadPercent,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyMeta to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(metas []domain.CurrencyMeta) []CurrencyResponse {
	res := make([]CurrencyResponse, len(metas))
	for i, m := range metas {
		res[i] = ToCurrencyResponse(m)
	}
	return res
}
