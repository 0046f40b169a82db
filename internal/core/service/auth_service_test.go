package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/accountly/account-system/internal/core/domain"
	"github.com/accountly/account-system/internal/token"
)

func newAuthService(repo *stubUserRepo) (*AuthService, *token.Issuer) {
	issuer := token.NewIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, zerolog.Nop()), issuer
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice@example.com", "alice", "s3cret")
	svc, issuer := newAuthService(repo)

	raw, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != seeded.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	sess, err := issuer.Parse(raw)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if sess.UserID != seeded.ID {
		t.Fatalf("expected subject %s, got %s", seeded.ID, sess.UserID)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailAreIdentical(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob@example.com", "bob", "goodpass")
	svc, _ := newAuthService(repo)

	_, _, wrongPw := svc.Login(context.Background(), "bob@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "badpass")

	if !errors.Is(wrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
}

func TestAuthService_Login_GatewayFailureSwallowed(t *testing.T) {
	repo := newStubUserRepo()
	repo.failAll = errors.New("connection reset")
	svc, _ := newAuthService(repo)

	// An unavailable gateway must look exactly like a failed login.
	_, _, err := svc.Login(context.Background(), "alice@example.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
