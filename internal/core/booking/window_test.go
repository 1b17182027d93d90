package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
)

func parisPolicy(t *testing.T) *WindowPolicy {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	p, err := NewWindowPolicy(loc, DefaultOpen, DefaultClose, DefaultRestDay)
	require.NoError(t, err)
	return p
}

func TestWindowPolicy_IsOpenAt(t *testing.T) {
	p := parisPolicy(t)
	loc := p.Location()

	// 2025-03-10 is a Monday, 2025-03-16 a Sunday.
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"exactly at opening", time.Date(2025, 3, 10, 9, 30, 0, 0, loc), true},
		{"one minute before opening", time.Date(2025, 3, 10, 9, 29, 59, 0, loc), false},
		{"midday", time.Date(2025, 3, 10, 13, 0, 0, 0, loc), true},
		{"last minute", time.Date(2025, 3, 10, 18, 59, 59, 0, loc), true},
		{"exactly at closing", time.Date(2025, 3, 10, 19, 0, 0, 0, loc), false},
		{"late evening", time.Date(2025, 3, 10, 22, 0, 0, 0, loc), false},
		{"saturday midday", time.Date(2025, 3, 15, 12, 0, 0, 0, loc), true},
		{"rest day midday", time.Date(2025, 3, 16, 12, 0, 0, 0, loc), false},
		{"rest day opening", time.Date(2025, 3, 16, 9, 30, 0, 0, loc), false},
		{"utc instant inside paris hours", time.Date(2025, 3, 10, 8, 45, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsOpenAt(tt.at))
		})
	}
}

func TestWindowPolicy_RestDayClosedAllDay(t *testing.T) {
	p := parisPolicy(t)
	start := time.Date(2025, 3, 16, 0, 0, 0, 0, p.Location())
	for m := 0; m < 24*60; m += 15 {
		assert.False(t, p.IsOpenAt(start.Add(time.Duration(m)*time.Minute)))
	}
}

func TestWindowPolicy_CheckOpenReason(t *testing.T) {
	p := parisPolicy(t)
	loc := p.Location()

	err := p.CheckOpen(time.Date(2025, 3, 16, 12, 0, 0, 0, loc))
	var closed *apperrors.BookingClosedError
	require.True(t, errors.As(err, &closed))
	assert.Equal(t, apperrors.ClosedRestDay, closed.Reason)
	assert.ErrorIs(t, err, apperrors.ErrBookingClosed)

	err = p.CheckOpen(time.Date(2025, 3, 10, 7, 0, 0, 0, loc))
	require.True(t, errors.As(err, &closed))
	assert.Equal(t, apperrors.ClosedOutsideHours, closed.Reason)

	assert.NoError(t, p.CheckOpen(time.Date(2025, 3, 10, 10, 0, 0, 0, loc)))
}

func TestWindowPolicy_NextDeadline(t *testing.T) {
	p := parisPolicy(t)
	loc := p.Location()

	d := p.NextDeadline(time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	assert.Equal(t, time.UTC, d.Location())
	assert.True(t, d.Equal(time.Date(2025, 3, 10, 19, 0, 0, 0, loc)))

	d = p.NextDeadline(time.Date(2025, 3, 10, 19, 0, 0, 0, loc))
	assert.True(t, d.Equal(time.Date(2025, 3, 11, 19, 0, 0, 0, loc)))

	// DST switch on 2025-03-30: closing stays at 19:00 local time.
	d = p.NextDeadline(time.Date(2025, 3, 29, 20, 0, 0, 0, loc))
	assert.True(t, d.Equal(time.Date(2025, 3, 30, 17, 0, 0, 0, time.UTC)))
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, Remaining{Hours: 2, Minutes: 5}, RemainingUntil(now, now.Add(125*time.Minute)))
	assert.Equal(t, Remaining{IsPast: true}, RemainingUntil(now, now.Add(-time.Second)))
	assert.Equal(t, Remaining{IsPast: true}, RemainingUntil(now, now))
	assert.Equal(t, Remaining{Hours: 0, Minutes: 0}, RemainingUntil(now, now.Add(59*time.Second)))
	assert.Equal(t, Remaining{Hours: 1, Minutes: 0}, parisPolicy(t).Remaining(now, now.Add(time.Hour)))
}

func TestParseClockAndWeekday(t *testing.T) {
	c, err := ParseClock(" 09:30 ")
	require.NoError(t, err)
	assert.Equal(t, DefaultOpen, c)
	assert.Equal(t, "09:30", c.String())

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	d, err := ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)
	_, err = ParseWeekday("funday")
	assert.Error(t, err)
}

func TestNewWindowPolicy_RejectsInvertedHours(t *testing.T) {
	_, err := NewWindowPolicy(nil, DefaultClose, DefaultOpen, time.Sunday)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
