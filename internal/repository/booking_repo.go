package repository

import (
	"context"
	"time"

	"travelapp/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64         `gorm:"column:id;primaryKey"`
	ListingID       int64         `gorm:"column:listing_id;index"`
	Listing         *listingModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	GuestID         int64         `gorm:"column:guest_id;index"`
	Guest           *userModel    `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	CheckInDate     time.Time     `gorm:"column:check_in_date"`
	CheckOutDate    time.Time     `gorm:"column:check_out_date"`
	NumberOfGuests  int           `gorm:"column:number_of_guests"`
	TotalPrice      float64       `gorm:"column:total_price;type:decimal(10,2)"`
	Status          string        `gorm:"column:status;size:20;default:pending"`
	SpecialRequests *string       `gorm:"column:special_requests;type:text"`
	CreatedAt       time.Time     `gorm:"column:created_at"`
	UpdatedAt       time.Time     `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// BookingDetails is a booking row joined with the guest's username and the
// listing's title and location.
type BookingDetails struct {
	Booking         domain.Booking
	GuestUsername   string
	ListingTitle    string
	ListingLocation string
}

func toDomainBooking(m bookingModel) *domain.Booking {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:              m.ID,
		ListingID:       m.ListingID,
		GuestID:         m.GuestID,
		CheckInDate:     m.CheckInDate,
		CheckOutDate:    m.CheckOutDate,
		NumberOfGuests:  m.NumberOfGuests,
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.Status),
		SpecialRequests: requests,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromDomainBooking(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:             b.ID,
		ListingID:      b.ListingID,
		GuestID:        b.GuestID,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
	}
	if b.SpecialRequests != "" {
		m.SpecialRequests = &b.SpecialRequests
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := fromDomainBooking(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

type bookingDetailsRow struct {
	bookingModel
	GuestUsername   string `gorm:"column:guest_username"`
	ListingTitle    string `gorm:"column:listing_title"`
	ListingLocation string `gorm:"column:listing_location"`
}

func toBookingDetails(row bookingDetailsRow) BookingDetails {
	return BookingDetails{
		Booking:         *toDomainBooking(row.bookingModel),
		GuestUsername:   row.GuestUsername,
		ListingTitle:    row.ListingTitle,
		ListingLocation: row.ListingLocation,
	}
}

func (r *BookingRepository) GetDetailsByID(ctx context.Context, id int64) (*BookingDetails, error) {
	var row bookingDetailsRow
	err := r.detailsQuery(ctx).Where("bookings.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	d := toBookingDetails(row)
	return &d, nil
}

// GetByGuestWithDetails returns the guest's bookings most-recently-created-first.
func (r *BookingRepository) GetByGuestWithDetails(ctx context.Context, guestID int64, limit, offset int) ([]BookingDetails, error) {
	var rows []bookingDetailsRow
	q := r.detailsQuery(ctx).
		Where("bookings.guest_id = ?", guestID).
		Order("bookings.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingDetails(row))
	}
	return out, nil
}

func (r *BookingRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, users.username AS guest_username, listings.title AS listing_title, listings.location AS listing_location").
		Joins("JOIN users ON users.id = bookings.guest_id").
		Joins("JOIN listings ON listings.id = bookings.listing_id")
}

// HasOverlap reports whether a non-cancelled booking of the listing covers any
// night in [checkIn, checkOut). excludeID skips one booking, for updates.
func (r *BookingRepository) HasOverlap(ctx context.Context, listingID, excludeID int64, checkIn, checkOut time.Time) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("listing_id = ?", listingID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := fromDomainBooking(b)
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"check_in_date":    m.CheckInDate,
			"check_out_date":   m.CheckOutDate,
			"number_of_guests": m.NumberOfGuests,
			"total_price":      m.TotalPrice,
			"special_requests": m.SpecialRequests,
		}).Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&bookingModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
