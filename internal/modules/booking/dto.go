package booking

import (
	"time"

	"travelapp/internal/repository"
)

// CreateBookingRequest carries no guest or total_price field: the guest is the
// authenticated actor and the price is always computed server-side.
type CreateBookingRequest struct {
	ListingID       int64  `json:"listing_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateBookingRequest struct {
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type BookingResponse struct {
	ID              int64     `json:"id"`
	ListingID       int64     `json:"listing_id"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	NumberOfGuests  int       `json:"number_of_guests"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	GuestUsername   string    `json:"guest_username"`
	ListingTitle    string    `json:"listing_title"`
	ListingLocation string    `json:"listing_location"`
	TotalNights     int       `json:"total_nights"`
}

func toBookingResponse(d repository.BookingDetails) BookingResponse {
	b := d.Booking

	var requests *string
	if b.SpecialRequests != "" {
		requests = &b.SpecialRequests
	}

	return BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		CheckInDate:     b.CheckInDate.Format(DateLayout),
		CheckOutDate:    b.CheckOutDate.Format(DateLayout),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: requests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		GuestUsername:   d.GuestUsername,
		ListingTitle:    d.ListingTitle,
		ListingLocation: d.ListingLocation,
		TotalNights:     b.TotalNights(),
	}
}
