package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	ListingID  int64     `json:"listing_id" validate:"required"`
	GuestID    int64     `json:"guest_id"`
	BookingID  int64     `json:"booking_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Title      string    `json:"title" validate:"required,max=200"`
	Comment    string    `json:"comment,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
