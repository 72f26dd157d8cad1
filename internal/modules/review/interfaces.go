package review

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetDetailsByID(ctx context.Context, id int64) (*repository.ReviewDetails, error)
	GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]repository.ReviewDetails, error)
	Delete(ctx context.Context, id int64) error
}

// BookingGate verifies that the actor actually stayed: the referenced booking
// must be theirs and completed before a review is accepted.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
