package model

// Resource is a bookable asset owned by a tenant. The booking core reads
// resources but never writes them.
type Resource struct {
	ID         string  `json:"id" bson:"_id" validate:"required"`
	TenantID   string  `json:"tenant_id" bson:"tenant_id" validate:"required"`
	Name       string  `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Type       string  `json:"type" bson:"type" validate:"required,min=2,max=50"`
	Capacity   int     `json:"capacity" bson:"capacity" validate:"required,min=1"`
	HourlyRate float64 `json:"hourly_rate" bson:"hourly_rate" validate:"gte=0"`
	IsActive   bool    `json:"is_active" bson:"is_active"`
}
