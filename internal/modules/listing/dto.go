package listing

import (
	"time"

	"travelapp/internal/repository"
)

// CreateListingRequest deliberately carries no host field: the host is always
// the authenticated actor. Field rules run through the domain validator so
// failures come back as a per-field map, not a bare binding error.
type CreateListingRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
}

type UpdateListingRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
	IsActive      *bool    `json:"is_active"`
}

type ListingResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Amenities     []string  `json:"amenities"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	IsActive      bool      `json:"is_active"`
	HostUsername  string    `json:"host_username"`
}

func toListingResponse(d repository.ListingDetails) ListingResponse {
	amenities := d.Listing.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return ListingResponse{
		ID:            d.Listing.ID,
		Title:         d.Listing.Title,
		Description:   d.Listing.Description,
		Location:      d.Listing.Location,
		PricePerNight: d.Listing.PricePerNight,
		MaxGuests:     d.Listing.MaxGuests,
		Bedrooms:      d.Listing.Bedrooms,
		Bathrooms:     d.Listing.Bathrooms,
		Amenities:     amenities,
		CreatedAt:     d.Listing.CreatedAt,
		UpdatedAt:     d.Listing.UpdatedAt,
		IsActive:      d.Listing.IsActive,
		HostUsername:  d.HostUsername,
	}
}
