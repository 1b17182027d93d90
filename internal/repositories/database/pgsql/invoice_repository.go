package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_shop/internal/models"
)

// PgxInvoiceRepository stores issued invoices. Rows are never updated.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func toDomainInvoice(m models.Invoice, items []models.InvoiceItem) *domain.Invoice {
	inv := &domain.Invoice{
		InvoiceID:     m.InvoiceID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   m.DateOfBirth,
		Address:       m.Address,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		InvoiceCode:   m.InvoiceCode,
		CreatedAt:     m.CreatedAt.UTC(),
		Items:         make([]domain.InvoiceItem, len(items)),
	}
	for i, it := range items {
		inv.Items[i] = domain.InvoiceItem{
			Currency:       it.Currency,
			AmountEuro:     it.AmountEuro,
			AmountLocal:    it.AmountLocal,
			RateEurToLocal: it.RateEurToLocal,
			RateLocalToEur: it.RateLocalToEur,
		}
	}
	return inv
}

// SaveInvoice inserts the invoice and its items in one transaction and sets InvoiceID.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO invoices (first_name, last_name, date_of_birth, address, payment_method, invoice_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING invoice_id`,
		invoice.FirstName, invoice.LastName, invoice.DateOfBirth, invoice.Address,
		string(invoice.PaymentMethod), invoice.InvoiceCode, invoice.CreatedAt,
	).Scan(&invoice.InvoiceID)
	if err != nil {
		return mapError(err, "insert invoice")
	}

	batch := &pgx.Batch{}
	for i, it := range invoice.Items {
		batch.Queue(`
			INSERT INTO invoice_items (invoice_id, position, currency, amount_euro, amount_local, rate_eur_to_local, rate_local_to_eur)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			invoice.InvoiceID, i, it.Currency, it.AmountEuro, it.AmountLocal, it.RateEurToLocal, it.RateLocalToEur)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapError(err, "insert invoice items")
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByCode(ctx context.Context, invoiceCode string) (*domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT invoice_id, first_name, last_name, date_of_birth, address, payment_method, invoice_code, created_at
		FROM invoices WHERE invoice_code = $1`, invoiceCode)
	if err != nil {
		return nil, mapError(err, "find invoice")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, mapError(err, "find invoice "+invoiceCode)
	}

	rows, err = r.Pool.Query(ctx, `
		SELECT invoice_id, position, currency, amount_euro, amount_local, rate_eur_to_local, rate_local_to_eur
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`, m.InvoiceID)
	if err != nil {
		return nil, mapError(err, "load invoice items")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InvoiceItem])
	if err != nil {
		return nil, mapError(err, "scan invoice items")
	}
	return toDomainInvoice(m, items), nil
}
