package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookable/pkg/model"
)

const buffer = 15 * time.Minute

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func booking(id string, start, end time.Time) model.Booking {
	return model.Booking{
		ID:         id,
		TenantID:   "tenant-1",
		ResourceID: "resource-1",
		StartTime:  start,
		EndTime:    end,
		Status:     model.StatusConfirmed,
	}
}

func TestConflictsOverlap(t *testing.T) {
	existing := booking("b1", at(10, 0), at(12, 0))

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{"fully inside", Interval{at(10, 30), at(11, 30)}, true},
		{"straddles start", Interval{at(9, 30), at(10, 30)}, true},
		{"straddles end", Interval{at(11, 30), at(12, 30)}, true},
		{"covers entirely", Interval{at(9, 0), at(13, 0)}, true},
		{"inside trailing buffer", Interval{at(12, 10), at(13, 0)}, true},
		{"starts exactly at buffered end", Interval{at(12, 15), at(13, 0)}, false},
		{"ends within buffer before start", Interval{at(9, 0), at(9, 50)}, true},
		{"ends exactly one buffer before start", Interval{at(9, 0), at(9, 45)}, false},
		{"well before", Interval{at(7, 0), at(8, 0)}, false},
		{"well after", Interval{at(14, 0), at(15, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Conflicts(tt.candidate, existing, buffer))
		})
	}
}

func TestConflictsZeroBufferBackToBack(t *testing.T) {
	existing := booking("b1", at(10, 0), at(12, 0))

	assert.False(t, Conflicts(Interval{at(12, 0), at(13, 0)}, existing, 0))
	assert.False(t, Conflicts(Interval{at(9, 0), at(10, 0)}, existing, 0))
}

func TestFindConflictIgnoresOtherResources(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", ResourceID: "resource-2", StartTime: at(10, 0), EndTime: at(12, 0)},
	}

	hit := FindConflict(Interval{at(10, 30), at(11, 30)}, "resource-1", bookings, buffer)
	assert.Nil(t, hit)
}

func TestFindConflictReturnsFirstInGivenOrder(t *testing.T) {
	// Both bookings overlap the candidate; the earlier-inserted one wins
	// even though it starts later in the day.
	bookings := []model.Booking{
		booking("inserted-first", at(11, 0), at(12, 0)),
		booking("inserted-second", at(10, 0), at(11, 30)),
	}

	hit := FindConflict(Interval{at(10, 30), at(11, 30)}, "resource-1", bookings, buffer)
	require.NotNil(t, hit)
	assert.Equal(t, "inserted-first", hit.ID)
}

func TestSuggestSlotsFirstSlotAfterConflictPlusBuffer(t *testing.T) {
	existing := booking("b1", at(10, 0), at(12, 0))
	candidate := Interval{at(10, 30), at(11, 30)}

	slots := SuggestSlots(candidate, "resource-1", existing, buffer, 3, []model.Booking{existing})

	require.Len(t, slots, 3)
	assert.Equal(t, at(12, 15), slots[0].Start)
	assert.Equal(t, at(13, 15), slots[0].End)
}

func TestSuggestSlotsPreserveDurationAndOrder(t *testing.T) {
	existing := booking("b1", at(10, 0), at(12, 0))
	candidate := Interval{at(10, 30), at(11, 30)}

	slots := SuggestSlots(candidate, "resource-1", existing, buffer, 3, []model.Booking{existing})

	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, candidate.Duration(), slot.Duration(), "slot %d duration", i)
		if i > 0 {
			assert.False(t, slot.Start.Before(slots[i-1].End), "slot %d starts before slot %d ends", i, i-1)
		}
	}
}

func TestSuggestSlotsDoNotConflict(t *testing.T) {
	bookings := []model.Booking{
		booking("b1", at(10, 0), at(12, 0)),
		booking("b2", at(12, 30), at(13, 30)),
		booking("b3", at(14, 0), at(15, 0)),
	}
	candidate := Interval{at(10, 30), at(11, 30)}

	slots := SuggestSlots(candidate, "resource-1", bookings[0], buffer, 3, bookings)

	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Nil(t, FindConflict(slot, "resource-1", bookings, buffer), "slot %d conflicts", i)
	}
}

func TestSuggestSlotsSkipPastLaterBookings(t *testing.T) {
	// The naive slot after b1 would be [12:15, 13:15), which collides with
	// b2's buffered window; the walk must jump past b2 instead.
	bookings := []model.Booking{
		booking("b1", at(10, 0), at(12, 0)),
		booking("b2", at(13, 0), at(14, 0)),
	}
	candidate := Interval{at(10, 30), at(11, 30)}

	slots := SuggestSlots(candidate, "resource-1", bookings[0], buffer, 3, bookings)

	require.Len(t, slots, 3)
	assert.Equal(t, at(14, 15), slots[0].Start)
	assert.Equal(t, at(15, 15), slots[0].End)
}

func TestSuggestSlotsDefaultMax(t *testing.T) {
	existing := booking("b1", at(10, 0), at(12, 0))
	candidate := Interval{at(10, 30), at(11, 30)}

	slots := SuggestSlots(candidate, "resource-1", existing, buffer, 0, []model.Booking{existing})
	assert.Len(t, slots, DefaultMaxSuggestions)
}

func TestSlots(t *testing.T) {
	intervals := []Interval{
		{at(12, 15), at(13, 15)},
		{at(13, 30), at(14, 30)},
	}

	slots := Slots(intervals)
	require.Len(t, slots, 2)
	assert.Equal(t, at(12, 15), slots[0].StartTime)
	assert.Equal(t, at(13, 15), slots[0].EndTime)
}
