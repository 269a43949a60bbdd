package errors

import "errors"

var (
	ErrTenantNotFound = errors.New("tenant not found")

	ErrResourceNotFound = errors.New("resource not found")

	ErrUserNotFound = errors.New("user not found")
)
