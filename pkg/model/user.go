package model

// User is a tenant member who can authenticate and hold bookings.
type User struct {
	ID           string `json:"id" bson:"_id" validate:"required"`
	TenantID     string `json:"tenant_id" bson:"tenant_id" validate:"required"`
	Name         string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string `json:"-" bson:"password_hash" validate:"required"`
}
