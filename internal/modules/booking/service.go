package booking

import (
	"context"
	"errors"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	listings ListingReader
}

func NewService(bookings BookingRepository, listings ListingReader) *Service {
	return &Service{bookings: bookings, listings: listings}
}

// CreateBooking validates a reservation request and persists it with the
// server-computed price. Rules run in order — date order, past check-in,
// capacity, overlap — and fail fast before any write.
func (s *Service) CreateBooking(ctx context.Context, guestID int64, req CreateBookingRequest) (*repository.BookingDetails, error) {
	checkIn, err := ParseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}

	listing, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if err := ValidateDates(checkIn, checkOut, Today(time.Now())); err != nil {
		return nil, err
	}
	if err := ValidateCapacity(req.NumberOfGuests, listing.MaxGuests); err != nil {
		return nil, err
	}

	taken, err := s.bookings.HasOverlap(ctx, listing.ID, 0, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		ListingID:       listing.ID,
		GuestID:         guestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      TotalPrice(listing.PricePerNight, checkIn, checkOut),
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	return s.bookings.GetDetailsByID(ctx, b.ID)
}

// GetMyBookings returns the actor's bookings most-recently-created-first.
func (s *Service) GetMyBookings(ctx context.Context, guestID int64, limit, offset int) ([]repository.BookingDetails, error) {
	return s.bookings.GetByGuestWithDetails(ctx, guestID, limit, offset)
}

// GetByID returns one booking. Only the guest who made it or the host of the
// booked listing may read it.
func (s *Service) GetByID(ctx context.Context, id, actorID int64) (*repository.BookingDetails, error) {
	d, err := s.bookings.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if d.Booking.GuestID != actorID {
		listing, err := s.listings.GetByID(ctx, d.Booking.ListingID)
		if err != nil {
			return nil, err
		}
		if listing.HostID != actorID {
			return nil, ErrForbidden
		}
	}
	return d, nil
}

// UpdateStatus moves a booking along pending → confirmed → completed, or to
// cancelled from any non-terminal state. The host drives confirmation and
// completion; cancellation is allowed to the guest as well.
func (s *Service) UpdateStatus(ctx context.Context, id, actorID int64, newStatus domain.BookingStatus) (*repository.BookingDetails, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	listing, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}

	isGuest := b.GuestID == actorID
	isHost := listing.HostID == actorID
	if newStatus == domain.BookingCancelled {
		if !isGuest && !isHost {
			return nil, ErrForbidden
		}
	} else if !isHost {
		return nil, ErrForbidden
	}

	if !b.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, string(newStatus)); err != nil {
		return nil, err
	}
	return s.bookings.GetDetailsByID(ctx, id)
}

// Update replaces the guest-editable fields of a pending booking, re-running
// the full validation and recomputing the price.
func (s *Service) Update(ctx context.Context, id, actorID int64, req UpdateBookingRequest) (*repository.BookingDetails, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.GuestID != actorID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	checkIn, err := ParseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}

	listing, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}

	if err := ValidateDates(checkIn, checkOut, Today(time.Now())); err != nil {
		return nil, err
	}
	if err := ValidateCapacity(req.NumberOfGuests, listing.MaxGuests); err != nil {
		return nil, err
	}

	taken, err := s.bookings.HasOverlap(ctx, listing.ID, b.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNotAvailable
	}

	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	b.NumberOfGuests = req.NumberOfGuests
	b.TotalPrice = TotalPrice(listing.PricePerNight, checkIn, checkOut)
	b.SpecialRequests = req.SpecialRequests

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.bookings.GetDetailsByID(ctx, id)
}

// Delete removes a booking. Only its guest may delete it.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.GuestID != actorID {
		return ErrForbidden
	}
	return s.bookings.Delete(ctx, id)
}
