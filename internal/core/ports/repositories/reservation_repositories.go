package repositories

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

// ReservationReader defines read operations for reservations
type ReservationReader interface {
	// FindReservationByCode retrieves a reservation and its items by order code.
	FindReservationByCode(ctx context.Context, orderCode string) (*domain.Reservation, error)

	// FindReservationsByUser retrieves a user's reservations, newest first.
	FindReservationsByUser(ctx context.Context, userID string) ([]domain.Reservation, error)

	// ListReservations retrieves a page of all reservations, newest first, strictly after cursor when set.
	ListReservations(ctx context.Context, limit int, cursor *pagination.Cursor) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservations
type ReservationWriter interface {
	// SaveReservation inserts a reservation and its items atomically.
	// It returns apperrors.ErrDuplicate when the order code is already taken.
	SaveReservation(ctx context.Context, reservation *domain.Reservation) error

	// UpdateReservationStatus sets the status of the reservation with the given order code.
	UpdateReservationStatus(ctx context.Context, orderCode string, status domain.ReservationStatus) error
}

// ReservationRepositoryFacade combines all reservation-related repository interfaces
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
