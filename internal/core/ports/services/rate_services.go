package services

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/shopspring/decimal"
)

// RateEngine turns static mids, overrides, rules and spot data into buy/sell quotes.
type RateEngine interface {
	// ComputeBuySell never fails; an unpriced currency yields a quote with nil fields.
	ComputeBuySell(ctx context.Context, code string) domain.Quote
}

// RateReaderSvc defines read operations for rates and the currency catalog
type RateReaderSvc interface {
	RateEngine

	// ListCurrencies returns the supported currencies in display order.
	ListCurrencies(ctx context.Context) []domain.CurrencyMeta

	// GetQuote returns the pricing picture of one supported currency.
	GetQuote(ctx context.Context, code string) (*domain.RateSheetEntry, error)

	// RateSheet returns the pricing picture of every supported currency.
	RateSheet(ctx context.Context) []domain.RateSheetEntry

	// RateBoard returns the public quote of every supported currency.
	RateBoard(ctx context.Context) []domain.RateSheetEntry

	// ConvertFromEur converts eur into code at the sell rate; ok is false when unpriced.
	ConvertFromEur(ctx context.Context, code string, eur decimal.Decimal) (decimal.Decimal, bool)

	// ConvertToEur converts an amount of code into EUR at the buy rate; ok is false when unpriced.
	ConvertToEur(ctx context.Context, code string, local decimal.Decimal) (decimal.Decimal, bool)
}

// RateWriterSvc defines admin write operations for overrides and rules
type RateWriterSvc interface {
	// SaveOverrides upserts every positive value and deletes the override of every value <= 0.
	SaveOverrides(ctx context.Context, overrides map[string]float64) error

	// SaveRule validates and stores a pricing rule; invalid input yields apperrors.FieldErrors.
	SaveRule(ctx context.Context, input dto.RateRuleInput) (*domain.RateRule, error)

	// SaveRateSheet applies the override and rule of every submitted row.
	SaveRateSheet(ctx context.Context, req dto.SaveRateSheetRequest) error
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}

// SpotSource supplies live EUR-based spot rates keyed by upper-case currency code.
// Implementations are best-effort and return an empty map on failure.
type SpotSource interface {
	EurSpots(ctx context.Context) map[string]float64
}
