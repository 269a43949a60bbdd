// Package events publishes booking lifecycle events to Kafka. Publishing
// is best-effort: a failed publish is logged and never fails the booking
// operation that triggered it.
package events

import (
	"time"

	"bookable/pkg/model"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// Header keys attached to every event.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// BookingEvent is the envelope written to the event topic. Events are
// keyed by resource ID so consumers observe per-resource ordering.
type BookingEvent struct {
	Type       string         `json:"type"`
	TenantID   string         `json:"tenant_id"`
	ResourceID string         `json:"resource_id"`
	BookingID  string         `json:"booking_id"`
	Booking    *model.Booking `json:"booking,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func BookingCreated(b model.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       TypeBookingCreated,
		TenantID:   b.TenantID,
		ResourceID: b.ResourceID,
		BookingID:  b.ID,
		Booking:    &b,
		OccurredAt: at,
	}
}

func BookingCancelled(tenantID, resourceID, bookingID string, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       TypeBookingCancelled,
		TenantID:   tenantID,
		ResourceID: resourceID,
		BookingID:  bookingID,
		OccurredAt: at,
	}
}
