package model

import "time"

// TenantPolicy is the per-tenant booking policy. Read-only input to
// validation and conflict detection.
type TenantPolicy struct {
	MaxBookingHours float64 `json:"max_booking_hours" bson:"max_booking_hours" validate:"required,gt=0"`
	BufferMinutes   int     `json:"buffer_minutes" bson:"buffer_minutes" validate:"gte=0"`
}

// Buffer returns the mandatory gap between consecutive bookings on the
// same resource as a duration.
func (p TenantPolicy) Buffer() time.Duration {
	return time.Duration(p.BufferMinutes) * time.Minute
}

type Tenant struct {
	ID       string       `json:"id" bson:"_id" validate:"required"`
	Name     string       `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Domain   string       `json:"domain" bson:"domain" validate:"required,fqdn"`
	Settings TenantPolicy `json:"settings" bson:"settings" validate:"required"`
}
