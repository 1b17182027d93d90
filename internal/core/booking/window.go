// Package booking decides when the shop accepts reservations and when they must be picked up.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
)

// Clock is a time of day, minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) minutes() int { return c.Hour*60 + c.Minute }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// ParseClock parses an "HH:MM" time of day.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return Clock{}, fmt.Errorf("%w: invalid time of day %q", apperrors.ErrValidation, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ParseWeekday parses an English weekday name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid weekday %q", apperrors.ErrValidation, s)
}

// Remaining is the time left before a pickup deadline, truncated to whole minutes.
type Remaining struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	IsPast  bool `json:"isPast"`
}

// WindowPolicy is a stateless booking window evaluated in the shop's time zone.
type WindowPolicy struct {
	loc     *time.Location
	open    Clock
	close   Clock
	restDay time.Weekday
}

// Default shop hours.
var (
	DefaultOpen    = Clock{Hour: 9, Minute: 30}
	DefaultClose   = Clock{Hour: 19, Minute: 0}
	DefaultRestDay = time.Sunday
)

// NewWindowPolicy returns a policy open on [open, close) every day except restDay.
// A nil location means UTC.
func NewWindowPolicy(loc *time.Location, open, close Clock, restDay time.Weekday) (*WindowPolicy, error) {
	if loc == nil {
		loc = time.UTC
	}
	if open.minutes() >= close.minutes() {
		return nil, fmt.Errorf("%w: opening time %s must be before closing time %s", apperrors.ErrValidation, open, close)
	}
	return &WindowPolicy{loc: loc, open: open, close: close, restDay: restDay}, nil
}

// Location returns the shop's time zone.
func (p *WindowPolicy) Location() *time.Location { return p.loc }

// Open returns the opening time of day.
func (p *WindowPolicy) Open() Clock { return p.open }

// Close returns the closing time of day.
func (p *WindowPolicy) Close() Clock { return p.close }

// RestDay returns the weekly closing day.
func (p *WindowPolicy) RestDay() time.Weekday { return p.restDay }

// IsOpenAt reports whether bookings are accepted at now.
func (p *WindowPolicy) IsOpenAt(now time.Time) bool {
	return p.CheckOpen(now) == nil
}

// CheckOpen returns a *apperrors.BookingClosedError carrying the reason when the shop is closed at now.
func (p *WindowPolicy) CheckOpen(now time.Time) error {
	local := now.In(p.loc)
	if local.Weekday() == p.restDay {
		return &apperrors.BookingClosedError{Reason: apperrors.ClosedRestDay}
	}
	m := minuteOfDay(local)
	if m < p.open.minutes() || m >= p.close.minutes() {
		return &apperrors.BookingClosedError{Reason: apperrors.ClosedOutsideHours}
	}
	return nil
}

// NextDeadline returns today's closing time when now is before it, otherwise tomorrow's.
// The result is in UTC.
func (p *WindowPolicy) NextDeadline(now time.Time) time.Time {
	local := now.In(p.loc)
	y, mo, d := local.Date()
	deadline := time.Date(y, mo, d, p.close.Hour, p.close.Minute, 0, 0, p.loc)
	if !local.Before(deadline) {
		deadline = time.Date(y, mo, d+1, p.close.Hour, p.close.Minute, 0, 0, p.loc)
	}
	return deadline.UTC()
}

// Remaining returns how long is left between now and deadline.
func (p *WindowPolicy) Remaining(now, deadline time.Time) Remaining {
	return RemainingUntil(now, deadline)
}

// RemainingUntil is Remaining without a policy.
func RemainingUntil(now, deadline time.Time) Remaining {
	if !now.Before(deadline) {
		return Remaining{IsPast: true}
	}
	diff := int(deadline.Sub(now) / time.Minute)
	return Remaining{Hours: diff / 60, Minutes: diff % 60}
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
