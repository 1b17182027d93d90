package services

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// InvoiceSvcFacade defines the invoice operations available to administrators
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, []domain.LineWarning, error)
	GetInvoice(ctx context.Context, invoiceCode string) (*domain.Invoice, error)

	// RenderInvoicePDF returns the invoice document and its download file name.
	RenderInvoicePDF(ctx context.Context, invoiceCode string) ([]byte, string, error)
}

// DocumentRenderer produces printable artefacts.
type DocumentRenderer interface {
	InvoicePDF(inv *domain.Invoice) ([]byte, error)
	QRCodePNG(content string) ([]byte, error)
}
