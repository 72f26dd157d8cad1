package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransitionTo reports whether a booking may move from its current status
// to next. Cancellation is allowed from any non-terminal state.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingConfirmed:
		return s == BookingPending
	case BookingCompleted:
		return s == BookingConfirmed
	case BookingCancelled:
		return s == BookingPending || s == BookingConfirmed
	default:
		return false
	}
}

type Booking struct {
	ID              int64         `json:"id"`
	ListingID       int64         `json:"listing_id" validate:"required"`
	GuestID         int64         `json:"guest_id"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"`
	NumberOfGuests  int           `json:"number_of_guests" validate:"required,gt=0"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// TotalNights is the calendar-day difference between check-out and check-in.
// It is recomputed on every read, never stored.
func (b Booking) TotalNights() int {
	return Nights(b.CheckInDate, b.CheckOutDate)
}

// Nights returns the number of nights between two calendar dates.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}
