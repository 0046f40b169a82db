package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accountly/account-system/internal/core/domain"
	"github.com/accountly/account-system/internal/core/ports"
)

// UserService implements the four user procedures: getUser, getAllUsers,
// updateUser, and registerUser. Every persistence failure is logged once here
// and wrapped; the transport layer translates wrapped errors to the
// INTERNAL_SERVER_ERROR kind.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// GetUser dispatches a single-user lookup on the chosen unique key.
func (s *UserService) GetUser(ctx context.Context, kind ports.LookupKind, value string) (*domain.User, error) {
	var user *domain.User
	var err error

	switch kind {
	case ports.LookupByID:
		user, err = s.repo.FindByID(ctx, value)
	case ports.LookupByEmail:
		user, err = s.repo.FindByEmail(ctx, value)
	case ports.LookupByName:
		user, err = s.repo.FindByName(ctx, value)
	default:
		return nil, fmt.Errorf("get user: unknown lookup kind %q", kind)
	}

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("user lookup failed")
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// GetAllUsers returns every user record, unpaginated and unfiltered.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("user list failed")
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update to an existing user. Only fields
// explicitly supplied are written; the identifier itself is never writable.
// A supplied password is re-hashed before persisting.
func (s *UserService) UpdateUser(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("update pre-read failed")
		return nil, fmt.Errorf("update user: %w", err)
	}

	fields := ports.UserUpdate{
		Email: in.Email,
		Name:  in.Name,
		Image: in.Image,
		Role:  in.Role,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		hashed := string(hash)
		fields.Password = &hashed
	}

	updated, err := s.repo.Update(ctx, in.UserID, fields)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) ||
			errors.Is(err, domain.ErrEmailTaken) ||
			errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("update write failed")
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Str("user_id", in.UserID).Msg("user updated")
	return updated, nil
}

// RegisterUser creates a new account after uniqueness checks. Both checks run
// before either is reported; an email collision is reported first. Username is
// required on input but is not part of the created record. Role defaults to
// USER.
func (s *UserService) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	byEmail, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.log.Error().Err(err).Msg("register email uniqueness check failed")
		return nil, fmt.Errorf("register user: %w", err)
	}

	byName, err := s.repo.FindByName(ctx, in.Name)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.log.Error().Err(err).Msg("register name uniqueness check failed")
		return nil, fmt.Errorf("register user: %w", err)
	}

	if byEmail != nil {
		return nil, domain.ErrEmailTaken
	}
	if byName != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:     in.Email,
		Name:      in.Name,
		Password:  string(hash),
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		s.log.Error().Err(err).Msg("register create failed")
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}
