package dto

import (
	"time"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data an administrator submits to issue an invoice.
type CreateInvoiceRequest struct {
	FirstName     string      `json:"firstName" binding:"required"`
	LastName      string      `json:"lastName" binding:"required"`
	DateOfBirth   string      `json:"dateOfBirth" binding:"required"`
	Address       string      `json:"address" binding:"required"`
	PaymentMethod string      `json:"paymentMethod"`
	RateFill      string      `json:"rateFill"`
	Lines         []LineInput `json:"lines" binding:"required"`
}

// InvoiceItemResponse is one invoiced line.
type InvoiceItemResponse struct {
	Currency       string          `json:"currency"`
	AmountEur      decimal.Decimal `json:"amountEur"`
	AmountLocal    decimal.Decimal `json:"amountLocal"`
	RateEurToLocal float64         `json:"rateEurToLocal"`
	RateLocalToEur float64         `json:"rateLocalToEur"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceCode   string                `json:"invoiceCode"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	DateOfBirth   string                `json:"dateOfBirth"`
	Address       string                `json:"address"`
	PaymentMethod string                `json:"paymentMethod"`
	CreatedAt     time.Time             `json:"createdAt"`
	TotalEur      decimal.Decimal       `json:"totalEur"`
	Items         []InvoiceItemResponse `json:"items"`
}

// CreateInvoiceResponse wraps a new invoice with the lines that were left out.
type CreateInvoiceResponse struct {
	Invoice  InvoiceResponse       `json:"invoice"`
	Warnings []LineWarningResponse `json:"warnings"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	total := decimal.Zero
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			Currency:       it.Currency,
			AmountEur:      it.AmountEuro,
			AmountLocal:    it.AmountLocal,
			RateEurToLocal: it.RateEurToLocal,
			RateLocalToEur: it.RateLocalToEur,
		}
		total = total.Add(it.AmountEuro)
	}
	return InvoiceResponse{
		InvoiceCode:   inv.InvoiceCode,
		FirstName:     inv.FirstName,
		LastName:      inv.LastName,
		DateOfBirth:   inv.DateOfBirth.Format("2006-01-02"),
		Address:       inv.Address,
		PaymentMethod: string(inv.PaymentMethod),
		CreatedAt:     inv.CreatedAt,
		TotalEur:      total,
		Items:         items,
	}
}
