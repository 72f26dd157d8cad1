package review

import (
	"context"
	"errors"
	"strings"

	"travelapp/internal/domain"
	"travelapp/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
}

func NewService(reviews ReviewRepository, bookings BookingGate) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// ValidateRating is the pure rating rule: integers in [1,5] only.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// Create accepts a review for a completed booking of the actor. is_verified is
// always set by the server — a completed stay makes the review verified — and
// one review per booking is enforced by a unique constraint.
func (s *Service) Create(ctx context.Context, guestID int64, req CreateReviewRequest) (*repository.ReviewDetails, error) {
	if err := ValidateRating(req.Rating); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, ErrForbidden
	}
	if b.ListingID != req.ListingID {
		return nil, ErrValidation
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrReviewNotAllowed
	}

	rv := &domain.Review{
		ListingID:  req.ListingID,
		GuestID:    guestID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Title:      req.Title,
		Comment:    req.Comment,
		IsVerified: true,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.reviews.GetDetailsByID(ctx, rv.ID)
}

func (s *Service) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]repository.ReviewDetails, error) {
	return s.reviews.GetByListing(ctx, listingID, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*repository.ReviewDetails, error) {
	d, err := s.reviews.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Delete removes a review. Only its author may delete it.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.GuestID != actorID {
		return ErrForbidden
	}
	return s.reviews.Delete(ctx, id)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite in local development
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
