package payout

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrPayoutNotFound   = errors.New("payout not found")
	ErrDuplicatePeriod  = errors.New("payout already exists for this period")
	ErrNoApprovedVenues = errors.New("no approved venues found")
)
