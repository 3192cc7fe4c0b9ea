package booking

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("booking not found")
	ErrEventNotFound = errors.New("event not found")
	ErrForbidden     = errors.New("not the booking owner")
	ErrNotCancelable = errors.New("booking cannot be cancelled")
)
