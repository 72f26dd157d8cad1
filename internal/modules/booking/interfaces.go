package booking

import (
	"context"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetailsByID(ctx context.Context, id int64) (*repository.BookingDetails, error)
	GetByGuestWithDetails(ctx context.Context, guestID int64, limit, offset int) ([]repository.BookingDetails, error)
	HasOverlap(ctx context.Context, listingID, excludeID int64, checkIn, checkOut time.Time) (bool, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// ListingReader is the slice of the listing repository the booking service
// needs: capacity and nightly rate of the target listing.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
