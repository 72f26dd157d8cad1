package listing

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

// ListingRepository defines the persistence operations for listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetDetailsByID(ctx context.Context, id int64) (*repository.ListingDetails, error)
	GetAll(ctx context.Context, limit, offset int) ([]repository.ListingDetails, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}
