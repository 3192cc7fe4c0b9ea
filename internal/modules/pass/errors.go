package pass

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("not the booking owner")
	ErrNotIssued       = errors.New("pass not issued")
)
