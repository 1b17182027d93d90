package models

import "time"

// RateOverride is a row of the rate_overrides table.
type RateOverride struct {
	Code      string    `db:"code"`
	Value     float64   `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RateRule is a row of the rate_rules table. Unset rule values are NULL.
type RateRule struct {
	Code        string    `db:"code"`
	Mode        string    `db:"mode"`
	ManualBuy   *float64  `db:"manual_buy"`
	ManualSell  *float64  `db:"manual_sell"`
	PercentBuy  *float64  `db:"percent_buy"`
	PercentSell *float64  `db:"percent_sell"`
	UpdatedAt   time.Time `db:"updated_at"`
}
