package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/booking"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/utils"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

const (
	defaultReservationPageSize = 20
	maxReservationPageSize     = 100
	// codeAttempts bounds regeneration of an order or invoice code colliding with an existing one.
	codeAttempts = 3
)

// Booking outcomes reported on the bookings counter.
const (
	bookingCreated  = "created"
	bookingClosed   = "closed"
	bookingRejected = "rejected"
	bookingFailed   = "failed"
)

// reservationService implements the ReservationSvcFacade interface
type reservationService struct {
	BaseService
	repo     portsrepo.ReservationRepositoryFacade
	lines    portssvc.LineReconcilerSvc
	policy   *booking.WindowPolicy
	renderer portssvc.DocumentRenderer
	bookings *prometheus.CounterVec
	now      func() time.Time
}

// ReservationServiceOption is a functional option for configuring the reservation service
type ReservationServiceOption func(*reservationService)

// WithReservationClock replaces the clock used for the booking window and deadlines.
func WithReservationClock(now func() time.Time) ReservationServiceOption {
	return func(s *reservationService) {
		s.now = now
	}
}

// WithBookingCounter counts reservation attempts by outcome.
func WithBookingCounter(c *prometheus.CounterVec) ReservationServiceOption {
	return func(s *reservationService) {
		s.bookings = c
	}
}

// NewReservationService creates a new reservation service
func NewReservationService(
	repo portsrepo.ReservationRepositoryFacade,
	lines portssvc.LineReconcilerSvc,
	policy *booking.WindowPolicy,
	renderer portssvc.DocumentRenderer,
	options ...ReservationServiceOption,
) portssvc.ReservationSvcFacade {
	svc := &reservationService{
		repo:     repo,
		lines:    lines,
		policy:   policy,
		renderer: renderer,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *reservationService) Now() time.Time {
	return s.now()
}

// BookingWindow reports the state of the booking window at now.
func (s *reservationService) BookingWindow(now time.Time) domain.BookingWindow {
	w := domain.BookingWindow{
		Open:         true,
		OpensAt:      s.policy.Open().String(),
		ClosesAt:     s.policy.Close().String(),
		RestDay:      s.policy.RestDay().String(),
		Timezone:     s.policy.Location().String(),
		NextDeadline: s.policy.NextDeadline(now),
	}
	var closed *apperrors.BookingClosedError
	if err := s.policy.CheckOpen(now); errors.As(err, &closed) {
		w.Open = false
		w.Reason = string(closed.Reason)
	}
	return w
}

// CreateReservation books the priced lines of req for userID.
func (s *reservationService) CreateReservation(ctx context.Context, userID string, req dto.CreateReservationRequest) (*domain.Reservation, []domain.LineWarning, error) {
	op := domain.Operation(strings.ToLower(req.Operation))
	fieldErrs := apperrors.FieldErrors{}
	if !op.IsValid() {
		fieldErrs["operation"] = "must be one of buy, sell"
	}
	firstName, lastName := utils.NormalizeName(req.FirstName), utils.NormalizeName(req.LastName)
	if firstName == "" {
		fieldErrs["firstName"] = "is required"
	}
	if lastName == "" {
		fieldErrs["lastName"] = "is required"
	}
	if len(fieldErrs) > 0 {
		s.count(bookingRejected)
		return nil, nil, fieldErrs
	}

	now := s.now()
	if err := s.policy.CheckOpen(now); err != nil {
		s.count(bookingClosed)
		s.LogInfo(ctx, "Reservation refused outside the booking window", slog.String("error", err.Error()))
		return nil, nil, err
	}

	items, warnings, err := s.lines.ReservationLines(ctx, op, req.Lines)
	if err != nil {
		s.count(bookingRejected)
		return nil, warnings, err
	}

	reservation := &domain.Reservation{
		UserID:         userID,
		FirstName:      firstName,
		LastName:       lastName,
		Operation:      op,
		Status:         domain.StatusPending,
		CreatedAt:      now.UTC(),
		PickupDeadline: s.policy.NextDeadline(now),
		Items:          items,
	}

	err = saveWithFreshCode(func(code string) error {
		reservation.OrderCode = code
		return s.repo.SaveReservation(ctx, reservation)
	})
	if err != nil {
		s.count(bookingFailed)
		s.LogError(ctx, err, "Failed to save reservation", slog.String("user_id", userID))
		return nil, warnings, fmt.Errorf("failed to save reservation: %w", err)
	}

	s.count(bookingCreated)
	s.LogInfo(ctx, "Reservation created",
		slog.String("order_code", reservation.OrderCode),
		slog.String("operation", string(op)),
		slog.Int("items", len(items)),
		slog.Int("warnings", len(warnings)))
	return reservation, warnings, nil
}

// ConfirmReservation marks the reservation as picked up.
func (s *reservationService) ConfirmReservation(ctx context.Context, orderCode string) (*domain.Reservation, error) {
	reservation, err := s.find(ctx, orderCode)
	if err != nil {
		return nil, err
	}
	if reservation.Status == domain.StatusCompleted {
		return reservation, nil
	}
	if err := s.repo.UpdateReservationStatus(ctx, reservation.OrderCode, domain.StatusCompleted); err != nil {
		s.LogError(ctx, err, "Failed to confirm reservation", slog.String("order_code", reservation.OrderCode))
		return nil, fmt.Errorf("failed to confirm reservation %s: %w", reservation.OrderCode, err)
	}
	reservation.Status = domain.StatusCompleted
	s.LogInfo(ctx, "Reservation confirmed", slog.String("order_code", reservation.OrderCode))
	return reservation, nil
}

func (s *reservationService) ListMyReservations(ctx context.Context, userID string) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindReservationsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user reservations", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// GetReservation hides reservations of other users behind ErrNotFound.
func (s *reservationService) GetReservation(ctx context.Context, userID, orderCode string, isAdmin bool) (*domain.Reservation, error) {
	reservation, err := s.find(ctx, orderCode)
	if err != nil {
		return nil, err
	}
	if !isAdmin && reservation.UserID != userID {
		return nil, fmt.Errorf("%w: reservation %s", apperrors.ErrNotFound, reservation.OrderCode)
	}
	return reservation, nil
}

// ListReservations returns a page of all reservations, newest first.
func (s *reservationService) ListReservations(ctx context.Context, params dto.ListReservationsParams) ([]domain.Reservation, string, error) {
	limit := pagination.ClampLimit(params.Limit, defaultReservationPageSize, maxReservationPageSize)
	cursor, err := pagination.DecodeToken(params.NextToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// One extra row tells whether another page exists.
	reservations, err := s.repo.ListReservations(ctx, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reservations")
		return nil, "", fmt.Errorf("failed to list reservations: %w", err)
	}

	var nextToken string
	if len(reservations) > limit {
		reservations = reservations[:limit]
		last := reservations[limit-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.OrderCode)
	}
	return reservations, nextToken, nil
}

func (s *reservationService) ReservationQR(ctx context.Context, userID, orderCode string, isAdmin bool) ([]byte, error) {
	reservation, err := s.GetReservation(ctx, userID, orderCode, isAdmin)
	if err != nil {
		return nil, err
	}
	png, err := s.renderer.QRCodePNG(reservation.OrderCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to render reservation QR code", slog.String("order_code", reservation.OrderCode))
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

func (s *reservationService) find(ctx context.Context, orderCode string) (*domain.Reservation, error) {
	code := strings.ToUpper(strings.TrimSpace(orderCode))
	reservation, err := s.repo.FindReservationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load reservation", slog.String("order_code", code))
		return nil, fmt.Errorf("failed to load reservation %s: %w", code, err)
	}
	return reservation, nil
}

func (s *reservationService) count(outcome string) {
	if s.bookings != nil {
		s.bookings.WithLabelValues(outcome).Inc()
	}
}

// saveWithFreshCode calls save with newly generated codes until it does not collide.
func saveWithFreshCode(save func(code string) error) error {
	var err error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		var code string
		code, err = utils.GenerateCode(utils.CodeLength)
		if err != nil {
			return err
		}
		err = save(code)
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return err
		}
	}
	return err
}
