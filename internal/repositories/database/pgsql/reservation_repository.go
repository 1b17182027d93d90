package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_shop/internal/models"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

const reservationColumns = `reservation_id, user_id, first_name, last_name, operation, order_code, status, created_at, pickup_deadline`

// PgxReservationRepository stores reservations and their item snapshots.
type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(db *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

func toDomainReservation(m models.Reservation, items []models.ReservationItem) domain.Reservation {
	r := domain.Reservation{
		ReservationID:  m.ReservationID,
		UserID:         m.UserID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Operation:      domain.Operation(m.Operation),
		OrderCode:      m.OrderCode,
		Status:         domain.ReservationStatus(m.Status),
		CreatedAt:      m.CreatedAt.UTC(),
		PickupDeadline: m.PickupDeadline.UTC(),
		Items:          make([]domain.ReservationItem, len(items)),
	}
	for i, it := range items {
		r.Items[i] = domain.ReservationItem{
			Currency:    it.Currency,
			AmountEuro:  it.AmountEuro,
			AmountLocal: it.AmountLocal,
			RateBuy:     it.RateBuy,
			RateSell:    it.RateSell,
		}
	}
	return r
}

// SaveReservation inserts the reservation and its items in one transaction and sets ReservationID.
func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO reservations (user_id, first_name, last_name, operation, order_code, status, created_at, pickup_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING reservation_id`,
		reservation.UserID, reservation.FirstName, reservation.LastName, string(reservation.Operation),
		reservation.OrderCode, string(reservation.Status), reservation.CreatedAt, reservation.PickupDeadline,
	).Scan(&reservation.ReservationID)
	if err != nil {
		return mapError(err, "insert reservation")
	}

	batch := &pgx.Batch{}
	for i, it := range reservation.Items {
		batch.Queue(`
			INSERT INTO reservation_items (reservation_id, position, currency, amount_euro, amount_local, rate_buy, rate_sell)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			reservation.ReservationID, i, it.Currency, it.AmountEuro, it.AmountLocal, it.RateBuy, it.RateSell)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapError(err, "insert reservation items")
	}

	return r.Commit(ctx, tx)
}

func (r *PgxReservationRepository) UpdateReservationStatus(ctx context.Context, orderCode string, status domain.ReservationStatus) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE reservations SET status = $1 WHERE order_code = $2`, string(status), orderCode)
	if err != nil {
		return mapError(err, "update reservation status")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: reservation %s", apperrors.ErrNotFound, orderCode)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationByCode(ctx context.Context, orderCode string) (*domain.Reservation, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE order_code = $1`, orderCode)
	if err != nil {
		return nil, mapError(err, "find reservation")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, mapError(err, "find reservation "+orderCode)
	}
	reservations, err := r.withItems(ctx, []models.Reservation{m})
	if err != nil {
		return nil, err
	}
	return &reservations[0], nil
}

func (r *PgxReservationRepository) FindReservationsByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, order_code DESC`, userID)
	if err != nil {
		return nil, mapError(err, "list user reservations")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, mapError(err, "scan user reservations")
	}
	return r.withItems(ctx, ms)
}

func (r *PgxReservationRepository) ListReservations(ctx context.Context, limit int, cursor *pagination.Cursor) ([]domain.Reservation, error) {
	var after *time.Time
	var afterCode *string
	if cursor != nil {
		after, afterCode = &cursor.CreatedAt, &cursor.Key
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE $1::timestamptz IS NULL OR (created_at, order_code) < ($1::timestamptz, $2::text)
		ORDER BY created_at DESC, order_code DESC
		LIMIT $3`, after, afterCode, limit)
	if err != nil {
		return nil, mapError(err, "list reservations")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, mapError(err, "scan reservations")
	}
	return r.withItems(ctx, ms)
}

// withItems loads the items of every reservation in one query.
func (r *PgxReservationRepository) withItems(ctx context.Context, ms []models.Reservation) ([]domain.Reservation, error) {
	if len(ms) == 0 {
		return []domain.Reservation{}, nil
	}
	ids := make([]int64, len(ms))
	for i, m := range ms {
		ids[i] = m.ReservationID
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT reservation_id, position, currency, amount_euro, amount_local, rate_buy, rate_sell
		FROM reservation_items
		WHERE reservation_id = ANY($1)
		ORDER BY reservation_id, position`, ids)
	if err != nil {
		return nil, mapError(err, "load reservation items")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ReservationItem])
	if err != nil {
		return nil, mapError(err, "scan reservation items")
	}

	byReservation := make(map[int64][]models.ReservationItem, len(ms))
	for _, it := range items {
		byReservation[it.ReservationID] = append(byReservation[it.ReservationID], it)
	}
	reservations := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		reservations[i] = toDomainReservation(m, byReservation[m.ReservationID])
	}
	return reservations, nil
}
