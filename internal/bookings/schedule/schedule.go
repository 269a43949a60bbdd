// Package schedule implements conflict detection and alternative-slot
// suggestion over a snapshot of confirmed bookings. It is pure
// computation; callers supply pre-fetched bookings and the tenant buffer.
package schedule

import (
	"time"

	"bookable/pkg/model"
)

// DefaultMaxSuggestions caps the alternatives attached to a conflict
// rejection.
const DefaultMaxSuggestions = 3

// Interval is a candidate time window.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Conflicts reports whether the candidate interval collides with an
// existing booking under the given buffer. The test inflates both sides
// by the buffer, which guarantees at least one full buffer of real gap
// between any two confirmed bookings regardless of insertion order.
func Conflicts(candidate Interval, existing model.Booking, buffer time.Duration) bool {
	return candidate.Start.Before(existing.EndTime.Add(buffer)) &&
		candidate.End.Add(buffer).After(existing.StartTime)
}

// FindConflict returns the first booking on the resource whose
// buffer-inflated window intersects the candidate, or nil if the
// candidate is clear. Bookings are scanned in the order given; the ledger
// hands them over in insertion order, so repeated queries against an
// unchanged ledger anchor on the same conflict.
func FindConflict(candidate Interval, resourceID string, bookings []model.Booking, buffer time.Duration) *model.Booking {
	for i := range bookings {
		if bookings[i].ResourceID != resourceID {
			continue
		}
		if Conflicts(candidate, bookings[i], buffer) {
			return &bookings[i]
		}
	}
	return nil
}

// SuggestSlots walks forward from the first conflict and collects up to
// max non-conflicting intervals of the same duration as the candidate.
//
// Each proposed slot starts one buffer after the cursor. A slot that
// still conflicts moves the cursor to the end of whatever booking was
// hit; an accepted slot moves the cursor to its own end, so suggestions
// never overlap each other. The cursor advances strictly forward on every
// step, so the walk always terminates.
func SuggestSlots(candidate Interval, resourceID string, firstConflict model.Booking, buffer time.Duration, max int, bookings []model.Booking) []Interval {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}

	duration := candidate.Duration()
	cursor := firstConflict.EndTime

	slots := make([]Interval, 0, max)
	for len(slots) < max {
		proposed := Interval{Start: cursor.Add(buffer)}
		proposed.End = proposed.Start.Add(duration)

		if hit := FindConflict(proposed, resourceID, bookings, buffer); hit != nil {
			cursor = hit.EndTime
			continue
		}

		slots = append(slots, proposed)
		cursor = proposed.End
	}
	return slots
}

// Slots converts intervals to the wire representation attached to
// conflict rejections.
func Slots(intervals []Interval) []model.Slot {
	out := make([]model.Slot, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, model.Slot{StartTime: iv.Start, EndTime: iv.End})
	}
	return out
}
