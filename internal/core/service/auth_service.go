package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accountly/account-system/internal/core/domain"
	"github.com/accountly/account-system/internal/core/ports"
	"github.com/accountly/account-system/internal/token"
)

// AuthService implements credential verification and session minting.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, log: log}
}

// Login verifies an email/password pair and mints a session token for the
// matched user. Unknown email, wrong password, and persistence failures are
// outwardly identical: infrastructure errors are logged here and collapsed to
// ErrInvalidCredentials so nothing leaks to unauthenticated callers.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Msg("login user lookup failed")
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	raw, err := s.issuer.Mint(user.ID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to mint session token")
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return raw, user, nil
}
