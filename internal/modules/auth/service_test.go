package auth

import (
	"context"
	"testing"

	"travelapp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, username string) (string, error) {
	return "test-token", nil
}

func TestService_Register_HashesPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(mockUsers, stubJWT{})

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "hunter2-hunter2",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "hunter2-hunter2", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2-hunter2")))
}

func TestService_Register_UsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	svc := NewService(mockUsers, stubJWT{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "hunter2-hunter2",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "bob").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{ID: 1}, nil)

	svc := NewService(mockUsers, stubJWT{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "hunter2-hunter2",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2-hunter2"), bcrypt.DefaultCost)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", PasswordHash: string(hash),
	}, nil)

	svc := NewService(mockUsers, stubJWT{})

	u, token, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "hunter2-hunter2"})

	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "test-token", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2-hunter2"), bcrypt.DefaultCost)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", PasswordHash: string(hash),
	}, nil)

	svc := NewService(mockUsers, stubJWT{})

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockUsers, stubJWT{})

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
