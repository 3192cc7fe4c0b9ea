package venue

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("venue not found")
	ErrForbidden  = errors.New("not the venue owner")
)
