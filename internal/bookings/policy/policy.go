// Package policy holds the pure interval math behind booking validation:
// duration bounds and buffer-inflated reservation windows. It performs no
// I/O and reads no ambient state; callers supply all inputs explicitly.
package policy

import (
	"fmt"
	"time"

	bookingserrors "bookable/internal/bookings/errors"
	"bookable/pkg/model"
)

// MinBookingHours is the platform-wide minimum booking length. Tenants
// configure only the maximum.
const MinBookingHours = 0.5

// DurationHours returns the elapsed time between start and end in hours.
// This is pure elapsed time; no calendar arithmetic is involved.
func DurationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// ValidateDuration checks a candidate interval against the tenant policy.
// Exactly MinBookingHours and exactly policy.MaxBookingHours are both
// accepted; anything outside is rejected with a sentinel the caller can
// match on.
func ValidateDuration(start, end time.Time, policy model.TenantPolicy) error {
	hours := DurationHours(start, end)
	if hours < MinBookingHours {
		return fmt.Errorf("%w: booking must be at least 30 minutes long", bookingserrors.ErrTooShort)
	}
	if hours > policy.MaxBookingHours {
		return fmt.Errorf("%w: booking cannot be longer than %g hours", bookingserrors.ErrTooLong, policy.MaxBookingHours)
	}
	return nil
}

// ReservedWindow returns the effective occupied window of a booking: its
// interval with the buffer appended after the end. The buffer models time
// to vacate and reset the resource, so it extends only past the end.
func ReservedWindow(b model.Booking, buffer time.Duration) (time.Time, time.Time) {
	return b.StartTime, b.EndTime.Add(buffer)
}

// TotalCost computes the price of a booking at creation time. It is never
// recomputed if the resource's rate changes later.
func TotalCost(start, end time.Time, hourlyRate float64) float64 {
	return DurationHours(start, end) * hourlyRate
}
