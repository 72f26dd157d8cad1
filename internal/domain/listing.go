package domain

import "time"

type Listing struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title" validate:"required,max=200"`
	Description   string    `json:"description" validate:"required"`
	Location      string    `json:"location" validate:"required,max=100"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gt=0"`
	MaxGuests     int       `json:"max_guests" validate:"required,gt=0"`
	Bedrooms      int       `json:"bedrooms" validate:"required,gt=0"`
	Bathrooms     int       `json:"bathrooms" validate:"required,gt=0"`
	Amenities     []string  `json:"amenities"`
	IsActive      bool      `json:"is_active"`
	HostID        int64     `json:"host_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
