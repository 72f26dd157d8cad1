package repository

import (
	"context"
	"time"

	"travelapp/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID            int64                       `gorm:"column:id;primaryKey"`
	Title         string                      `gorm:"column:title;size:200"`
	Description   string                      `gorm:"column:description;type:text"`
	Location      string                      `gorm:"column:location;size:100"`
	PricePerNight float64                     `gorm:"column:price_per_night;type:decimal(10,2)"`
	MaxGuests     int                         `gorm:"column:max_guests"`
	Bedrooms      int                         `gorm:"column:bedrooms"`
	Bathrooms     int                         `gorm:"column:bathrooms"`
	Amenities     datatypes.JSONSlice[string] `gorm:"column:amenities"`
	IsActive      bool                        `gorm:"column:is_active;default:true"`
	HostID        int64                       `gorm:"column:host_id;index"`
	Host          *userModel                  `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time                   `gorm:"column:created_at"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "listings" }

// ListingDetails is a listing row joined with its host's username.
type ListingDetails struct {
	Listing      domain.Listing
	HostUsername string
}

func toDomainListing(m listingModel) *domain.Listing {
	return &domain.Listing{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Location:      m.Location,
		PricePerNight: m.PricePerNight,
		MaxGuests:     m.MaxGuests,
		Bedrooms:      m.Bedrooms,
		Bathrooms:     m.Bathrooms,
		Amenities:     []string(m.Amenities),
		IsActive:      m.IsActive,
		HostID:        m.HostID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDomainListing(l *domain.Listing) listingModel {
	return listingModel{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		Amenities:     datatypes.NewJSONSlice(l.Amenities),
		IsActive:      l.IsActive,
		HostID:        l.HostID,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	m := fromDomainListing(l)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	l.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var m listingModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainListing(m), nil
}

type listingDetailsRow struct {
	listingModel
	HostUsername string `gorm:"column:host_username"`
}

func (r *ListingRepository) GetDetailsByID(ctx context.Context, id int64) (*ListingDetails, error) {
	var row listingDetailsRow
	err := r.db.WithContext(ctx).
		Table("listings").
		Select("listings.*, users.username AS host_username").
		Joins("JOIN users ON users.id = listings.host_id").
		Where("listings.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &ListingDetails{Listing: *toDomainListing(row.listingModel), HostUsername: row.HostUsername}, nil
}

// GetAll returns listings most-recently-created-first.
func (r *ListingRepository) GetAll(ctx context.Context, limit, offset int) ([]ListingDetails, error) {
	var rows []listingDetailsRow
	q := r.db.WithContext(ctx).
		Table("listings").
		Select("listings.*, users.username AS host_username").
		Joins("JOIN users ON users.id = listings.host_id").
		Order("listings.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ListingDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, ListingDetails{Listing: *toDomainListing(row.listingModel), HostUsername: row.HostUsername})
	}
	return out, nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	m := fromDomainListing(l)
	return r.db.WithContext(ctx).
		Model(&listingModel{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{
			"title":           m.Title,
			"description":     m.Description,
			"location":        m.Location,
			"price_per_night": m.PricePerNight,
			"max_guests":      m.MaxGuests,
			"bedrooms":        m.Bedrooms,
			"bathrooms":       m.Bathrooms,
			"amenities":       m.Amenities,
			"is_active":       m.IsActive,
		}).Error
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&listingModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
