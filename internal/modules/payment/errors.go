package payment

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrAmountMismatch   = errors.New("amount mismatch")
	ErrOrderNotFound    = errors.New("payment order not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotPayable       = errors.New("booking is not payable")
)
