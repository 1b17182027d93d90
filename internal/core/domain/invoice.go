package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how an invoice was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// ParsePaymentMethod returns the matching method, defaulting to cash.
func ParsePaymentMethod(s string) PaymentMethod {
	switch m := PaymentMethod(s); m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return m
	}
	return PaymentCash
}

// InvoiceItem is an immutable snapshot of one invoiced currency line.
type InvoiceItem struct {
	Currency       string          `json:"currency"`
	AmountEuro     decimal.Decimal `json:"amountEuro"`
	AmountLocal    decimal.Decimal `json:"amountLocal"`
	RateEurToLocal float64         `json:"rateEurToLocal"`
	RateLocalToEur float64         `json:"rateLocalToEur"`
}

// Invoice is issued by an administrator and never edited afterwards.
type Invoice struct {
	InvoiceID     int64         `json:"-"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	DateOfBirth   time.Time     `json:"dateOfBirth"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	InvoiceCode   string        `json:"invoiceCode"`
	CreatedAt     time.Time     `json:"createdAt"`
	Items         []InvoiceItem `json:"items"`
}

// RateFillMode selects how a missing rate direction on an invoice line is derived.
type RateFillMode string

const (
	// RateFillReciprocal derives the missing direction as 1/x of the supplied one.
	RateFillReciprocal RateFillMode = "reciprocal"
	// RateFillEngine takes the missing direction from the current quote.
	RateFillEngine RateFillMode = "engine"
)

// ParseRateFillMode returns the matching mode, defaulting to reciprocal.
func ParseRateFillMode(s string) RateFillMode {
	if RateFillMode(s) == RateFillEngine {
		return RateFillEngine
	}
	return RateFillReciprocal
}
