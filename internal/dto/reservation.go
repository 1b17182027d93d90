package dto

import (
	"time"

	"github.com/SscSPs/exchange_shop/internal/core/booking"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReservationRequest defines the data needed to book currency for pickup.
type CreateReservationRequest struct {
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Operation string      `json:"operation" binding:"required,oneof=buy sell"`
	Lines     []LineInput `json:"lines" binding:"required"`
}

// ReservationItemResponse is one booked line.
type ReservationItemResponse struct {
	Currency    string          `json:"currency"`
	AmountEur   decimal.Decimal `json:"amountEur"`
	AmountLocal decimal.Decimal `json:"amountLocal"`
	RateBuy     float64         `json:"rateBuy"`
	RateSell    float64         `json:"rateSell"`
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	OrderCode      string                    `json:"orderCode"`
	FirstName      string                    `json:"firstName"`
	LastName       string                    `json:"lastName"`
	Operation      string                    `json:"operation"`
	Status         string                    `json:"status"`
	CreatedAt      time.Time                 `json:"createdAt"`
	PickupDeadline time.Time                 `json:"pickupDeadline"`
	Remaining      booking.Remaining         `json:"remaining"`
	Expired        bool                      `json:"expired"`
	TotalEur       decimal.Decimal           `json:"totalEur"`
	Items          []ReservationItemResponse `json:"items"`
}

// CreateReservationResponse wraps a new reservation with the lines that were left out.
type CreateReservationResponse struct {
	Reservation ReservationResponse   `json:"reservation"`
	Warnings    []LineWarningResponse `json:"warnings"`
}

// ListReservationsParams defines query parameters for the admin reservation list.
type ListReservationsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListReservationsResponse wraps a page of reservations.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToReservationResponse converts a domain.Reservation to ReservationResponse DTO as seen at now.
func ToReservationResponse(r *domain.Reservation, now time.Time) ReservationResponse {
	items := make([]ReservationItemResponse, len(r.Items))
	total := decimal.Zero
	for i, it := range r.Items {
		items[i] = ReservationItemResponse{
			Currency:    it.Currency,
			AmountEur:   it.AmountEuro,
			AmountLocal: it.AmountLocal,
			RateBuy:     it.RateBuy,
			RateSell:    it.RateSell,
		}
		total = total.Add(it.AmountEuro)
	}
	return ReservationResponse{
		OrderCode:      r.OrderCode,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Operation:      string(r.Operation),
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		PickupDeadline: r.PickupDeadline,
		Remaining:      booking.RemainingUntil(now, r.PickupDeadline),
		Expired:        r.IsExpired(now),
		TotalEur:       total,
		Items:          items,
	}
}

// ToListReservationResponse converts a slice of domain.Reservation to DTOs.
func ToListReservationResponse(rs []domain.Reservation, now time.Time) []ReservationResponse {
	res := make([]ReservationResponse, len(rs))
	for i := range rs {
		res[i] = ToReservationResponse(&rs[i], now)
	}
	return res
}

// BookingWindowResponse tells clients whether reservations are accepted now.
type BookingWindowResponse struct {
	Open         bool      `json:"open"`
	Reason       string    `json:"reason,omitempty"`
	OpensAt      string    `json:"opensAt"`
	ClosesAt     string    `json:"closesAt"`
	RestDay      string    `json:"restDay"`
	Timezone     string    `json:"timezone"`
	NextDeadline time.Time `json:"nextDeadline"`
}

// ToBookingWindowResponse converts a domain.BookingWindow to its DTO.
func ToBookingWindowResponse(w domain.BookingWindow) BookingWindowResponse {
	return BookingWindowResponse(w)
}
