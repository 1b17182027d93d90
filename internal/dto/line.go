package dto

import "github.com/SscSPs/exchange_shop/internal/core/domain"

// LineInput is one row of a multi-currency form. Every numeric field is free text;
// unparseable or negative values count as not supplied.
type LineInput struct {
	Currency       string `json:"currency"`
	AmountEur      string `json:"amountEur"`
	AmountLocal    string `json:"amountLocal"`
	RateEurToLocal string `json:"rateEurToLocal,omitempty"`
	RateLocalToEur string `json:"rateLocalToEur,omitempty"`
}

// LineWarningResponse reports a line that was left out.
type LineWarningResponse struct {
	Line     int    `json:"line"`
	Currency string `json:"currency"`
	Reason   string `json:"reason"`
}

// ToLineWarningResponses converts domain warnings to DTOs. It never returns nil.
func ToLineWarningResponses(ws []domain.LineWarning) []LineWarningResponse {
	res := make([]LineWarningResponse, len(ws))
	for i, w := range ws {
		res[i] = LineWarningResponse{Line: w.Line, Currency: w.Currency, Reason: w.Reason}
	}
	return res
}
