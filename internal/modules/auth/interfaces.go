package auth

import (
	"context"

	"clubradar/internal/domain"
)

// UserRepository defines the user lookups auth needs
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
