package event

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("event not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrVenueNotApproved = errors.New("venue is not approved")
	ErrForbidden        = errors.New("not the venue owner")
)
