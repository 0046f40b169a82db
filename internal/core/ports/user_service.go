package ports

import (
	"context"

	"github.com/accountly/account-system/internal/core/domain"
)

// LookupKind selects the unique key a getUser call dispatches on.
type LookupKind string

const (
	LookupByID    LookupKind = "ID"
	LookupByEmail LookupKind = "EMAIL"
	LookupByName  LookupKind = "NAME"
)

// UpdateUserInput carries a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	UserID   string
	Email    *string
	Name     *string
	Password *string
	Image    *string
	Role     *domain.Role
}

// RegisterUserInput carries the registration payload. Username is required
// by the procedure contract but is not written to the created record.
type RegisterUserInput struct {
	Email    string
	Username string
	Name     string
	Password string
}

type UserService interface {
	GetUser(ctx context.Context, kind LookupKind, value string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	RegisterUser(ctx context.Context, in RegisterUserInput) (*domain.User, error)
}
