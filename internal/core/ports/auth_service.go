package ports

import (
	"context"

	"github.com/accountly/account-system/internal/core/domain"
)

// AuthService verifies credentials and mints session tokens.
// Login collapses every failure (unknown email, wrong password, persistence
// error) into domain.ErrInvalidCredentials.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
