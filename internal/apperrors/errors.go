package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrRateUnavailable indicates that no buy/sell quote exists for a currency.
var ErrRateUnavailable = errors.New("rate unavailable")

// ErrNoLineItems indicates that a multi-line submission resolved to zero usable lines.
var ErrNoLineItems = errors.New("add at least one currency line")

// ErrBookingClosed indicates that reservations are not accepted at the requested time.
var ErrBookingClosed = errors.New("booking closed")

// FieldErrors carries field-level validation messages. It unwraps to ErrValidation.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (fe FieldErrors) Unwrap() error { return ErrValidation }

// ClosedReason explains why the booking window rejected a request.
type ClosedReason string

const (
	ClosedRestDay      ClosedReason = "rest_day"
	ClosedOutsideHours ClosedReason = "outside_hours"
)

// BookingClosedError is returned when a reservation is attempted outside the booking window.
type BookingClosedError struct {
	Reason ClosedReason
}

func (e *BookingClosedError) Error() string {
	switch e.Reason {
	case ClosedRestDay:
		return "booking closed: the shop is closed today"
	default:
		return "booking closed: outside opening hours"
	}
}

func (e *BookingClosedError) Unwrap() error { return ErrBookingClosed }
