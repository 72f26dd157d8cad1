package listing

import (
	"context"
	"testing"

	"travelapp/internal/domain"
	"travelapp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 10 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) GetDetailsByID(ctx context.Context, id int64) (*repository.ListingDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ListingDetails), args.Error(1)
}

func (m *MockListingRepository) GetAll(ctx context.Context, limit, offset int) ([]repository.ListingDetails, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ListingDetails), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateRequest() CreateListingRequest {
	return CreateListingRequest{
		Title:         "Cozy Cottage in Portland, OR",
		Description:   "A comfortable place for your stay.",
		Location:      "Portland, OR",
		PricePerNight: 120.50,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"WiFi", "Kitchen"},
	}
}

func TestService_Create_HostIsActor(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Listing")).Return(nil)
	mockRepo.On("GetDetailsByID", mock.Anything, int64(10)).Return(&repository.ListingDetails{
		Listing:      domain.Listing{ID: 10, HostID: 3, IsActive: true},
		HostUsername: "john_host",
	}, nil)

	svc := NewService(mockRepo)

	d, err := svc.Create(context.Background(), 3, validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "john_host", d.HostUsername)

	created := mockRepo.Calls[0].Arguments.Get(1).(*domain.Listing)
	assert.Equal(t, int64(3), created.HostID)
	assert.True(t, created.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_ValidationFails(t *testing.T) {
	mockRepo := new(MockListingRepository)
	svc := NewService(mockRepo)

	req := validCreateRequest()
	req.PricePerNight = 0

	_, err := svc.Create(context.Background(), 3, req)

	assert.ErrorIs(t, err, ErrValidation)

	var fieldErrs *FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields, "PricePerNight")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_NotTheHost(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10, HostID: 3}, nil)

	svc := NewService(mockRepo)

	_, err := svc.Update(context.Background(), 10, 99, UpdateListingRequest{
		Title:         "Renamed",
		Description:   "desc",
		Location:      "Austin, TX",
		PricePerNight: 80,
		MaxGuests:     2,
		Bedrooms:      1,
		Bathrooms:     1,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_HostStaysFixed(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10, HostID: 3, IsActive: true}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Listing")).Return(nil)
	mockRepo.On("GetDetailsByID", mock.Anything, int64(10)).Return(&repository.ListingDetails{
		Listing:      domain.Listing{ID: 10, HostID: 3},
		HostUsername: "john_host",
	}, nil)

	svc := NewService(mockRepo)

	req := UpdateListingRequest{
		Title:         "Renamed",
		Description:   "desc",
		Location:      "Austin, TX",
		PricePerNight: 80,
		MaxGuests:     2,
		Bedrooms:      1,
		Bathrooms:     1,
	}
	_, err := svc.Update(context.Background(), 10, 3, req)
	assert.NoError(t, err)

	updated := mockRepo.Calls[1].Arguments.Get(1).(*domain.Listing)
	assert.Equal(t, int64(3), updated.HostID)
	assert.True(t, updated.IsActive) // omitted is_active keeps the current value
}

func TestService_Deactivate(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10, HostID: 3, IsActive: true}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Listing")).Return(nil)

	svc := NewService(mockRepo)

	err := svc.Deactivate(context.Background(), 10, 3)
	assert.NoError(t, err)

	updated := mockRepo.Calls[1].Arguments.Get(1).(*domain.Listing)
	assert.False(t, updated.IsActive)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockRepo)

	err := svc.Delete(context.Background(), 404, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotTheHost(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10, HostID: 3}, nil)

	svc := NewService(mockRepo)

	err := svc.Delete(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrForbidden)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
