package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingserrors "bookable/internal/bookings/errors"
	"bookable/pkg/model"
)

var testPolicy = model.TenantPolicy{
	MaxBookingHours: 4,
	BufferMinutes:   15,
}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestDurationHours(t *testing.T) {
	assert.Equal(t, 2.0, DurationHours(at(10, 0), at(12, 0)))
	assert.Equal(t, 0.5, DurationHours(at(10, 0), at(10, 30)))
	assert.Equal(t, 1.25, DurationHours(at(10, 0), at(11, 15)))
}

func TestValidateDurationAcceptsMinimumExactly(t *testing.T) {
	err := ValidateDuration(at(10, 0), at(10, 30), testPolicy)
	assert.NoError(t, err)
}

func TestValidateDurationRejectsJustUnderMinimum(t *testing.T) {
	err := ValidateDuration(at(10, 0), at(10, 29), testPolicy)
	assert.True(t, errors.Is(err, bookingserrors.ErrTooShort))
}

func TestValidateDurationAcceptsMaximumExactly(t *testing.T) {
	err := ValidateDuration(at(10, 0), at(14, 0), testPolicy)
	assert.NoError(t, err)
}

func TestValidateDurationRejectsOverMaximum(t *testing.T) {
	err := ValidateDuration(at(10, 0), at(14, 1), testPolicy)
	assert.True(t, errors.Is(err, bookingserrors.ErrTooLong))
}

func TestValidateDurationRejectsReversedInterval(t *testing.T) {
	err := ValidateDuration(at(12, 0), at(10, 0), testPolicy)
	assert.True(t, errors.Is(err, bookingserrors.ErrTooShort))
}

func TestReservedWindowExtendsOnlyPastEnd(t *testing.T) {
	b := model.Booking{StartTime: at(10, 0), EndTime: at(12, 0)}

	start, end := ReservedWindow(b, 15*time.Minute)
	assert.Equal(t, at(10, 0), start)
	assert.Equal(t, at(12, 15), end)
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, 200.0, TotalCost(at(10, 0), at(12, 0), 100))
	assert.Equal(t, 12.5, TotalCost(at(10, 0), at(10, 30), 25))
	assert.Equal(t, 0.0, TotalCost(at(10, 0), at(12, 0), 0))
}
