package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places kept on snapshotted amounts.
const AmountPlaces = 2

// maxAmountLen bounds the cleaned input so parsing and rounding stay cheap.
const maxAmountLen = 32

var amountCleaner = strings.NewReplacer(
	" ", "",
	"\u00a0", "", // no-break space
	"\u202f", "", // narrow no-break space
	"\t", "",
	",", ".",
)

// ParseAmount parses free-text user input as a non-negative decimal.
// Both "." and "," are accepted as decimal separators and spaces are ignored.
// ok is false when the input is blank, malformed, negative, too long or written with an exponent.
func ParseAmount(raw string) (d decimal.Decimal, ok bool) {
	s := amountCleaner.Replace(strings.TrimSpace(raw))
	if s == "" || len(s) > maxAmountLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// ParseRate parses free-text user input as a strictly positive, finite rate.
func ParseRate(raw string) (float64, bool) {
	d, ok := ParseAmount(raw)
	if !ok || !d.IsPositive() {
		return 0, false
	}
	f, _ := d.Float64()
	if !IsUsableRate(f) {
		return 0, false
	}
	return f, true
}

// IsUsableRate reports whether f is a finite rate > 0 whose reciprocal is finite too.
func IsUsableRate(f float64) bool {
	if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return !math.IsInf(1/f, 0)
}

// Round2 rounds d half away from zero to AmountPlaces.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}
