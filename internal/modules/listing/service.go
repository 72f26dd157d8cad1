package listing

import (
	"context"
	"errors"

	"travelapp/internal/domain"
	"travelapp/internal/pkg/validator"
	"travelapp/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	listings ListingRepository
}

func NewService(listings ListingRepository) *Service {
	return &Service{listings: listings}
}

// Create persists a listing owned by the actor and returns its full joined
// representation. The host reference comes from the authenticated actor only;
// it can never be set by the caller.
func (s *Service) Create(ctx context.Context, actorID int64, req CreateListingRequest) (*repository.ListingDetails, error) {
	l := &domain.Listing{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
		IsActive:      true,
		HostID:        actorID,
	}

	if errs := validator.Validate(l); errs != nil {
		return nil, &FieldErrors{Fields: errs}
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return s.listings.GetDetailsByID(ctx, l.ID)
}

func (s *Service) GetAll(ctx context.Context, limit, offset int) ([]repository.ListingDetails, error) {
	return s.listings.GetAll(ctx, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*repository.ListingDetails, error) {
	d, err := s.listings.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Update replaces the mutable fields of a listing. Only the host may update;
// the host reference itself never changes.
func (s *Service) Update(ctx context.Context, id, actorID int64, req UpdateListingRequest) (*repository.ListingDetails, error) {
	current, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if current.HostID != actorID {
		return nil, ErrForbidden
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	l := &domain.Listing{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
		IsActive:      isActive,
		HostID:        current.HostID,
	}

	if errs := validator.Validate(l); errs != nil {
		return nil, &FieldErrors{Fields: errs}
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return s.listings.GetDetailsByID(ctx, id)
}

// Deactivate soft-deletes a listing by flipping is_active off.
func (s *Service) Deactivate(ctx context.Context, id, actorID int64) error {
	current, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if current.HostID != actorID {
		return ErrForbidden
	}

	current.IsActive = false
	return s.listings.Update(ctx, current)
}

// Delete removes a listing; dependent bookings and reviews cascade at the
// storage layer.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	current, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if current.HostID != actorID {
		return ErrForbidden
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
