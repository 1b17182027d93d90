package dto

import (
	"time"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
)

// QuoteResponse is the public buy/sell quote of one currency.
type QuoteResponse struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Flag     string   `json:"flag"`
	Mid      *float64 `json:"mid"`
	Buy      *float64 `json:"buy"`
	Sell     *float64 `json:"sell"`
	Strategy string   `json:"strategy"`
}

// ToQuoteResponse converts a domain.RateSheetEntry to QuoteResponse DTO
func ToQuoteResponse(e domain.RateSheetEntry) QuoteResponse {
	return QuoteResponse{
		Code:     e.Meta.Code,
		Name:     e.Meta.DisplayName,
		Country:  e.Meta.Country,
		Flag:     e.Meta.Flag,
		Mid:      e.Quote.Mid,
		Buy:      e.Quote.Buy,
		Sell:     e.Quote.Sell,
		Strategy: string(e.Quote.Strategy),
	}
}

// ToListQuoteResponse converts rate sheet entries to public quotes.
func ToListQuoteResponse(entries []domain.RateSheetEntry) []QuoteResponse {
	res := make([]QuoteResponse, len(entries))
	for i, e := range entries {
		res[i] = ToQuoteResponse(e)
	}
	return res
}

// RateRuleResponse is the stored pricing rule of a currency.
type RateRuleResponse struct {
	Mode        string    `json:"mode"`
	ManualBuy   *float64  `json:"manualBuy"`
	ManualSell  *float64  `json:"manualSell"`
	PercentBuy  *float64  `json:"percentBuy"`
	PercentSell *float64  `json:"percentSell"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RateSheetRowResponse is one admin rate-sheet row.
type RateSheetRowResponse struct {
	QuoteResponse
	DefaultSpreadPercent float64           `json:"defaultSpreadPercent"`
	StaticMid            *float64          `json:"staticMid"`
	Override             *float64          `json:"override"`
	Rule                 *RateRuleResponse `json:"rule"`
}

// ToRateSheetResponse converts rate sheet entries to admin rows.
func ToRateSheetResponse(entries []domain.RateSheetEntry) []RateSheetRowResponse {
	res := make([]RateSheetRowResponse, len(entries))
	for i, e := range entries {
		row := RateSheetRowResponse{
			QuoteResponse:        ToQuoteResponse(e),
			DefaultSpreadPercent: e.Meta.DefaultSpreadPercent,
			StaticMid:            e.StaticMid,
			Override:             e.Override,
		}
		if e.Rule != nil {
			row.Rule = &RateRuleResponse{
				Mode:        string(e.Rule.Mode),
				ManualBuy:   e.Rule.ManualBuy,
				ManualSell:  e.Rule.ManualSell,
				PercentBuy:  e.Rule.PercentBuy,
				PercentSell: e.Rule.PercentSell,
				UpdatedAt:   e.Rule.UpdatedAt,
			}
		}
		res[i] = row
	}
	return res
}

// RateRuleInput is an admin pricing rule submission for one currency.
type RateRuleInput struct {
	Code        string   `json:"code" binding:"required"`
	Mode        string   `json:"mode"`
	ManualBuy   *float64 `json:"manualBuy"`
	ManualSell  *float64 `json:"manualSell"`
	PercentBuy  *float64 `json:"percentBuy"`
	PercentSell *float64 `json:"percentSell"`
}

// RateRowInput is one edited rate-sheet row.
// A nil Override leaves the stored override untouched; a value <= 0 clears it.
// An empty Mode leaves the stored rule untouched.
type RateRowInput struct {
	RateRuleInput
	Override *float64 `json:"override"`
}

// SaveRateSheetRequest carries the edited rows of the admin rate sheet.
type SaveRateSheetRequest struct {
	Rows []RateRowInput `json:"rows" binding:"required,min=1,dive"`
}
