package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_MintParse_Roundtrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.Mint("user_1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	sess, err := issuer.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sess.UserID != "user_1" {
		t.Fatalf("expected subject user_1, got %q", sess.UserID)
	}
	if sess.ExpiresAt.IsZero() {
		t.Fatalf("expected expiry to be set")
	}
}

func TestIssuer_Parse_Expired(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewIssuer("secret", time.Hour).WithClock(func() time.Time { return clock })

	raw, err := issuer.Mint("user_1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	// Still valid just before expiry.
	clock = clock.Add(59 * time.Minute)
	if _, err := issuer.Parse(raw); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// Invalid once the TTL has elapsed.
	clock = clock.Add(2 * time.Minute)
	if _, err := issuer.Parse(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Parse_WrongKey(t *testing.T) {
	raw, err := NewIssuer("secret-a", time.Hour).Mint("user_1")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Parse(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Parse_Garbage(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Parse("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Parse_NoSubject(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	// A signed token without a subject claim yields a session with no identity.
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sess, err := issuer.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sess.UserID != "" {
		t.Fatalf("expected empty subject, got %q", sess.UserID)
	}
}
