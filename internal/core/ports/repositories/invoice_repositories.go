package repositories

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	FindInvoiceByCode(ctx context.Context, invoiceCode string) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices. Invoices are append-only.
type InvoiceWriter interface {
	// SaveInvoice inserts an invoice and its items atomically.
	// It returns apperrors.ErrDuplicate when the invoice code is already taken.
	SaveInvoice(ctx context.Context, invoice *domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
