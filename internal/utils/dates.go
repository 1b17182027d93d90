package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2/1/2006",
}

// ParseFlexibleDate parses a calendar date in ISO or day-first European notation.
func ParseFlexibleDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", apperrors.ErrValidation, raw)
}

// AgeOn returns the age in completed years of someone born on dob at the date of now.
func AgeOn(dob, now time.Time) int {
	y1, m1, d1 := dob.Date()
	y2, m2, d2 := now.Date()
	age := y2 - y1
	if m2 < m1 || (m2 == m1 && d2 < d1) {
		age--
	}
	return age
}
