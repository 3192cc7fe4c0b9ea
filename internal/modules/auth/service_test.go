package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, email, role string) (string, error) {
	return "token", nil
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "dj@club.in").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, fakeJWT{})
	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "  DJ@Club.in ",
		Password: "supersecret",
		Name:     "DJ",
		Role:     "venue_owner",
	})

	assert.NoError(t, err)
	assert.Equal(t, "dj@club.in", u.Email)
	assert.Equal(t, domain.RoleVenueOwner, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("supersecret")))
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := NewService(new(MockUserRepository), fakeJWT{})
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.c",
		Password: "supersecret",
		Name:     "A",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "dj@club.in").Return(&domain.User{ID: 1}, nil)

	svc := NewService(users, fakeJWT{})
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "dj@club.in",
		Password: "supersecret",
		Name:     "DJ",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "dj@club.in").
		Return(&domain.User{ID: 1, Email: "dj@club.in", PasswordHash: string(hash)}, nil)

	svc := NewService(users, fakeJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "dj@club.in", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@club.in").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, fakeJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@club.in", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("db down")
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "dj@club.in").Return(nil, boom)

	svc := NewService(users, fakeJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "dj@club.in", Password: "x"})
	assert.ErrorIs(t, err, boom)
}
