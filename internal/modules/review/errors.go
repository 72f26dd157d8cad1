package review

import "errors"

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("review not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("booking already reviewed")
	ErrReviewNotAllowed = errors.New("review requires a completed booking")
)
