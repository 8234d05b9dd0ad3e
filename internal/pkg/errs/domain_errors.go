package errs

import "errors"

// Sentinel errors shared across the usecase and handler layers
var (
	// Session errors
	ErrMalformedSession = errors.New("malformed session")
	ErrUnauthenticated  = errors.New("unauthenticated")

	// Booking lifecycle errors
	ErrBookingNotLoaded   = errors.New("booking not loaded")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransitionRejected = errors.New("status change not confirmed by backend")
	ErrCancelNotAllowed   = errors.New("booking cannot be cancelled")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Upstream errors
	ErrUpstream = errors.New("admin api request failed")
)
