package model

import (
	"time"
)

const (
	StatusConfirmed = "confirmed"
)

// Booking is a confirmed reservation of a resource for a time window.
// Bookings are immutable once committed; changing one is modeled as
// cancel-then-recreate.
type Booking struct {
	ID         string    `json:"id" bson:"_id"`
	TenantID   string    `json:"tenant_id" bson:"tenant_id" validate:"required"`
	ResourceID string    `json:"resource_id" bson:"resource_id" validate:"required"`
	UserEmail  string    `json:"user_email" bson:"user_email" validate:"required,email"`
	UserName   string    `json:"user_name" bson:"user_name" validate:"required,min=2,max=100"`
	StartTime  time.Time `json:"start_time" bson:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	Attendees  int       `json:"attendees" bson:"attendees" validate:"required,min=1"`
	Status     string    `json:"status" bson:"status" validate:"required,oneof=confirmed"`
	TotalCost  float64   `json:"total_cost" bson:"total_cost" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// BookingRequest is a candidate booking as supplied by a caller. Both the
// HTTP API and the assistant produce this exact shape; there is no relaxed
// validation path for machine-originated proposals.
type BookingRequest struct {
	ResourceID string    `json:"resource_id" validate:"required"`
	UserEmail  string    `json:"user_email" validate:"required,email"`
	UserName   string    `json:"user_name" validate:"required,min=2,max=100"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Attendees  int       `json:"attendees" validate:"required,min=1"`
}

// Slot is a suggested alternative time window returned alongside a
// conflict rejection.
type Slot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
