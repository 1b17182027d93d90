package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is a row of the reservations table.
type Reservation struct {
	ReservationID  int64     `db:"reservation_id"`
	UserID         string    `db:"user_id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Operation      string    `db:"operation"`
	OrderCode      string    `db:"order_code"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	PickupDeadline time.Time `db:"pickup_deadline"`
}

// ReservationItem is a row of the reservation_items table.
type ReservationItem struct {
	ReservationID int64           `db:"reservation_id"`
	Position      int             `db:"position"`
	Currency      string          `db:"currency"`
	AmountEuro    decimal.Decimal `db:"amount_euro"`
	AmountLocal   decimal.Decimal `db:"amount_local"`
	RateBuy       float64         `db:"rate_buy"`
	RateSell      float64         `db:"rate_sell"`
}
