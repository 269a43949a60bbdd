package errors

import "errors"

var (
	ErrTooShort = errors.New("booking is shorter than the minimum duration")

	ErrTooLong = errors.New("booking exceeds the tenant's maximum duration")
)
