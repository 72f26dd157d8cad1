package booking

import (
	"math"
	"time"

	"travelapp/internal/domain"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ValidateDates applies the date rules for a proposed stay, in order:
// check-out strictly after check-in, then check-in not before today.
// today must be a calendar date (midnight).
func ValidateDates(checkIn, checkOut, today time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateOrder
	}
	if checkIn.Before(today) {
		return ErrCheckInPast
	}
	return nil
}

// ValidateCapacity rejects a guest count above the listing's maximum.
func ValidateCapacity(guests, maxGuests int) error {
	if guests > maxGuests {
		return ErrGuestCapacity
	}
	return nil
}

// TotalPrice is nightly rate times night count, rounded to cents.
func TotalPrice(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	nights := domain.Nights(checkIn, checkOut)
	return math.Round(pricePerNight*float64(nights)*100) / 100
}

// Today is the calendar date of t, taken in t's location so "today" follows
// server local time, expressed as a UTC midnight comparable with parsed wire
// dates.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a wire-format calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
