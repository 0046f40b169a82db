package ports

import (
	"context"

	"github.com/accountly/account-system/internal/core/domain"
)

// UserUpdate is a partial write: only non-nil fields are persisted.
// The user ID is never part of the writable set.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
	Image    *string
	Role     *domain.Role
}

// UserRepository defines the interface for user persistence.
// Lookups return domain.ErrUserNotFound when no record matches; uniqueness
// violations on write surface as domain.ErrEmailTaken / domain.ErrUsernameTaken.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, fields UserUpdate) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
