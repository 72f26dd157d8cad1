package repository

import (
	"context"
	"time"

	"travelapp/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         int64         `gorm:"column:id;primaryKey"`
	ListingID  int64         `gorm:"column:listing_id;index"`
	Listing    *listingModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	GuestID    int64         `gorm:"column:guest_id;uniqueIndex:idx_one_review_per_booking"`
	Guest      *userModel    `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	BookingID  int64         `gorm:"column:booking_id;uniqueIndex:idx_one_review_per_booking"`
	Booking    *bookingModel `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Rating     int           `gorm:"column:rating"`
	Title      string        `gorm:"column:title;size:200"`
	Comment    string        `gorm:"column:comment;type:text"`
	IsVerified bool          `gorm:"column:is_verified;default:false"`
	CreatedAt  time.Time     `gorm:"column:created_at"`
	UpdatedAt  time.Time     `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

// ReviewDetails is a review row joined with the guest's username and the
// listing's title.
type ReviewDetails struct {
	Review        domain.Review
	GuestUsername string
	ListingTitle  string
}

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:         m.ID,
		ListingID:  m.ListingID,
		GuestID:    m.GuestID,
		BookingID:  m.BookingID,
		Rating:     m.Rating,
		Title:      m.Title,
		Comment:    m.Comment,
		IsVerified: m.IsVerified,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		ListingID:  rv.ListingID,
		GuestID:    rv.GuestID,
		BookingID:  rv.BookingID,
		Rating:     rv.Rating,
		Title:      rv.Title,
		Comment:    rv.Comment,
		IsVerified: rv.IsVerified,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	rv.ID = m.ID
	rv.CreatedAt = m.CreatedAt
	rv.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainReview(m), nil
}

type reviewDetailsRow struct {
	reviewModel
	GuestUsername string `gorm:"column:guest_username"`
	ListingTitle  string `gorm:"column:listing_title"`
}

func toReviewDetails(row reviewDetailsRow) ReviewDetails {
	return ReviewDetails{
		Review:        *toDomainReview(row.reviewModel),
		GuestUsername: row.GuestUsername,
		ListingTitle:  row.ListingTitle,
	}
}

func (r *ReviewRepository) GetDetailsByID(ctx context.Context, id int64) (*ReviewDetails, error) {
	var row reviewDetailsRow
	err := r.detailsQuery(ctx).Where("reviews.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	d := toReviewDetails(row)
	return &d, nil
}

func (r *ReviewRepository) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]ReviewDetails, error) {
	var rows []reviewDetailsRow
	q := r.detailsQuery(ctx).
		Where("reviews.listing_id = ?", listingID).
		Order("reviews.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ReviewDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReviewDetails(row))
	}
	return out, nil
}

func (r *ReviewRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.username AS guest_username, listings.title AS listing_title").
		Joins("JOIN users ON users.id = reviews.guest_id").
		Joins("JOIN listings ON listings.id = reviews.listing_id")
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&reviewModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
