package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/utils"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	repo     portsrepo.InvoiceRepositoryFacade
	lines    portssvc.LineReconcilerSvc
	renderer portssvc.DocumentRenderer
	now      func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceClock replaces the clock stamping new invoices.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, lines portssvc.LineReconcilerSvc, renderer portssvc.DocumentRenderer, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{repo: repo, lines: lines, renderer: renderer, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// CreateInvoice issues an invoice for the priced lines of req.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, []domain.LineWarning, error) {
	now := s.now()
	fieldErrs := apperrors.FieldErrors{}

	firstName, lastName := utils.NormalizeName(req.FirstName), utils.NormalizeName(req.LastName)
	if firstName == "" {
		fieldErrs["firstName"] = "is required"
	}
	if lastName == "" {
		fieldErrs["lastName"] = "is required"
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		fieldErrs["address"] = "is required"
	}
	dob, err := utils.ParseFlexibleDate(req.DateOfBirth)
	switch {
	case err != nil:
		fieldErrs["dateOfBirth"] = "must be a date such as 2006-01-02 or 02/01/2006"
	case dob.After(now):
		fieldErrs["dateOfBirth"] = "must not be in the future"
	}
	if len(fieldErrs) > 0 {
		return nil, nil, fieldErrs
	}

	items, warnings, err := s.lines.InvoiceLines(ctx, domain.ParseRateFillMode(req.RateFill), req.Lines)
	if err != nil {
		return nil, warnings, err
	}

	invoice := &domain.Invoice{
		FirstName:     firstName,
		LastName:      lastName,
		DateOfBirth:   dob,
		Address:       address,
		PaymentMethod: domain.ParsePaymentMethod(req.PaymentMethod),
		CreatedAt:     now.UTC(),
		Items:         items,
	}
	err = saveWithFreshCode(func(code string) error {
		invoice.InvoiceCode = code
		return s.repo.SaveInvoice(ctx, invoice)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice")
		return nil, warnings, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_code", invoice.InvoiceCode),
		slog.Int("items", len(items)),
		slog.Int("warnings", len(warnings)))
	return invoice, warnings, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceCode string) (*domain.Invoice, error) {
	code := strings.ToUpper(strings.TrimSpace(invoiceCode))
	invoice, err := s.repo.FindInvoiceByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load invoice", slog.String("invoice_code", code))
		return nil, fmt.Errorf("failed to load invoice %s: %w", code, err)
	}
	return invoice, nil
}

// RenderInvoicePDF returns the printable invoice and a file name for it.
func (s *invoiceService) RenderInvoicePDF(ctx context.Context, invoiceCode string) ([]byte, string, error) {
	invoice, err := s.GetInvoice(ctx, invoiceCode)
	if err != nil {
		return nil, "", err
	}
	pdf, err := s.renderer.InvoicePDF(invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice PDF", slog.String("invoice_code", invoice.InvoiceCode))
		return nil, "", fmt.Errorf("failed to render invoice %s: %w", invoice.InvoiceCode, err)
	}
	return pdf, fmt.Sprintf("Invoice_%s.pdf", invoice.InvoiceCode), nil
}
