package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:        newPgxRateRepository(dbPool),
		ReservationRepo: newPgxReservationRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		DisplayRepo:     newPgxDisplayRepository(dbPool),
		ContactRepo:     newPgxContactRepository(dbPool),
	}
}
