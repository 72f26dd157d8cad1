package review

import (
	"time"

	"travelapp/internal/repository"
)

// CreateReviewRequest carries no guest or is_verified field: the guest is the
// authenticated actor and verification is decided by the server.
type CreateReviewRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	BookingID int64  `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Title     string `json:"title" binding:"required,max=200"`
	Comment   string `json:"comment"`
}

type ReviewResponse struct {
	ID            int64     `json:"id"`
	ListingID     int64     `json:"listing_id"`
	BookingID     int64     `json:"booking_id"`
	Rating        int       `json:"rating"`
	Title         string    `json:"title"`
	Comment       string    `json:"comment,omitempty"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	GuestUsername string    `json:"guest_username"`
	ListingTitle  string    `json:"listing_title"`
}

func toReviewResponse(d repository.ReviewDetails) ReviewResponse {
	return ReviewResponse{
		ID:            d.Review.ID,
		ListingID:     d.Review.ListingID,
		BookingID:     d.Review.BookingID,
		Rating:        d.Review.Rating,
		Title:         d.Review.Title,
		Comment:       d.Review.Comment,
		IsVerified:    d.Review.IsVerified,
		CreatedAt:     d.Review.CreatedAt,
		UpdatedAt:     d.Review.UpdatedAt,
		GuestUsername: d.GuestUsername,
		ListingTitle:  d.ListingTitle,
	}
}
