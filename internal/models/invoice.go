package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID     int64     `db:"invoice_id"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	DateOfBirth   time.Time `db:"date_of_birth"`
	Address       string    `db:"address"`
	PaymentMethod string    `db:"payment_method"`
	InvoiceCode   string    `db:"invoice_code"`
	CreatedAt     time.Time `db:"created_at"`
}

// InvoiceItem is a row of the invoice_items table.
type InvoiceItem struct {
	InvoiceID      int64           `db:"invoice_id"`
	Position       int             `db:"position"`
	Currency       string          `db:"currency"`
	AmountEuro     decimal.Decimal `db:"amount_euro"`
	AmountLocal    decimal.Decimal `db:"amount_local"`
	RateEurToLocal float64         `db:"rate_eur_to_local"`
	RateLocalToEur float64         `db:"rate_local_to_eur"`
}
