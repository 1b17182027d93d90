package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the customer's side of a reservation.
type Operation string

const (
	// OperationBuy: customer pays EUR and receives foreign currency, priced at the sell rate.
	OperationBuy Operation = "buy"
	// OperationSell: customer hands foreign currency and receives EUR, priced at the buy rate.
	OperationSell Operation = "sell"
)

// IsValid reports whether o is buy or sell.
func (o Operation) IsValid() bool {
	return o == OperationBuy || o == OperationSell
}

// ReservationStatus tracks pickup of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusCompleted ReservationStatus = "completed"
)

// ReservationItem is an immutable snapshot of one booked currency line.
type ReservationItem struct {
	Currency    string          `json:"currency"`
	AmountEuro  decimal.Decimal `json:"amountEuro"`
	AmountLocal decimal.Decimal `json:"amountLocal"`
	RateBuy     float64         `json:"rateBuy"`
	RateSell    float64         `json:"rateSell"`
}

// Reservation is a customer's booking of currency for pickup at the shop.
type Reservation struct {
	ReservationID  int64             `json:"-"`
	UserID         string            `json:"userID"`
	FirstName      string            `json:"firstName"`
	LastName       string            `json:"lastName"`
	Operation      Operation         `json:"operation"`
	OrderCode      string            `json:"orderCode"`
	Status         ReservationStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	PickupDeadline time.Time         `json:"pickupDeadline"` // stored in UTC
	Items          []ReservationItem `json:"items"`
}

// IsExpired reports whether a pending reservation has passed its pickup deadline.
func (r *Reservation) IsExpired(now time.Time) bool {
	return r.Status == StatusPending && now.After(r.PickupDeadline)
}

// BookingWindow describes whether reservations are currently accepted.
type BookingWindow struct {
	Open         bool      `json:"open"`
	Reason       string    `json:"reason,omitempty"`
	OpensAt      string    `json:"opensAt"`
	ClosesAt     string    `json:"closesAt"`
	RestDay      string    `json:"restDay"`
	Timezone     string    `json:"timezone"`
	NextDeadline time.Time `json:"nextDeadline"`
}
