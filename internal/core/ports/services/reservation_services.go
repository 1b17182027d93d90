package services

import (
	"context"
	"time"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// ReservationReaderSvc defines read operations for reservations
type ReservationReaderSvc interface {
	// ListMyReservations returns the caller's reservations, newest first.
	ListMyReservations(ctx context.Context, userID string) ([]domain.Reservation, error)

	// GetReservation returns a reservation visible to its owner or to an administrator.
	GetReservation(ctx context.Context, userID, orderCode string, isAdmin bool) (*domain.Reservation, error)

	// ListReservations returns a page of all reservations and the token of the next page.
	ListReservations(ctx context.Context, params dto.ListReservationsParams) ([]domain.Reservation, string, error)

	// ReservationQR returns a PNG QR code encoding the order code.
	ReservationQR(ctx context.Context, userID, orderCode string, isAdmin bool) ([]byte, error)

	// BookingWindow reports whether bookings are accepted at now.
	BookingWindow(now time.Time) domain.BookingWindow

	// Now returns the service clock.
	Now() time.Time
}

// ReservationWriterSvc defines write operations for reservations
type ReservationWriterSvc interface {
	// CreateReservation books the priced lines of req; lines whose rate is unavailable come back as warnings.
	CreateReservation(ctx context.Context, userID string, req dto.CreateReservationRequest) (*domain.Reservation, []domain.LineWarning, error)

	// ConfirmReservation marks a pending reservation as picked up. Completed reservations stay completed.
	ConfirmReservation(ctx context.Context, orderCode string) (*domain.Reservation, error)
}

// ReservationSvcFacade combines all reservation-related service interfaces
type ReservationSvcFacade interface {
	ReservationReaderSvc
	ReservationWriterSvc
}
