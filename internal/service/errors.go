package service

import "errors"

// Domain rule violations surfaced by the services. Handlers translate these
// into HTTP statuses; anything else maps to an internal error.
var (
	ErrInvalidID       = errors.New("invalid document id")
	ErrNotFound        = errors.New("document not found")
	ErrAlreadyEnrolled = errors.New("already enrolled")
	ErrForbidden       = errors.New("forbidden")
	ErrMissingFields   = errors.New("missing required fields")
)
