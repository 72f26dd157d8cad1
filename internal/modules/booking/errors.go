package booking

import "errors"

var (
	// The three creation rules, each reported as its own failure.
	ErrInvalidDateOrder = errors.New("check-out date must be after check-in date")
	ErrCheckInPast      = errors.New("check-in date cannot be in the past")
	ErrGuestCapacity    = errors.New("number of guests exceeds maximum allowed")

	ErrValidation              = errors.New("validation error")
	ErrListingNotFound         = errors.New("listing not found")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrNotAvailable            = errors.New("listing not available for the selected dates")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
