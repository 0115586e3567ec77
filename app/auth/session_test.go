package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signToken(t *testing.T, secret string, c jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return token
}

func TestParseVerified(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{
		"sub":  "user-1",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	session, err := NewVerifier("s3cret").Parse(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.Subject != "user-1" || !session.IsAdmin() {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"sub": "user-1", "role": "ADMIN"})

	_, err := NewVerifier("other").Parse(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseUnverifiedStillChecksExpiry(t *testing.T) {
	token := signToken(t, "whatever", jwt.MapClaims{
		"sub":  "user-1",
		"role": "RECEPTIONIST",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	_, err := NewVerifier("").Parse(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseUnverified(t *testing.T) {
	token := signToken(t, "whatever", jwt.MapClaims{"sub": "user-2", "role": "INSTRUCTOR"})

	session, err := NewVerifier("").Parse(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.Subject != "user-2" || session.Role != RoleInstructor || session.IsAdmin() {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestParseRequiresSubject(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"role": "ADMIN"})
	if _, err := NewVerifier("s3cret").Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := NewVerifier("s3cret").Parse("  "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("bearer abc.def")
	if err != nil || token != "abc.def" {
		t.Fatalf("unexpected bearer parse: %q %v", token, err)
	}
	if _, err := BearerToken("Basic dXNlcg=="); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := WithToken(context.Background(), "tok")
	ctx = WithSession(ctx, &Session{Subject: "u"})
	if TokenFromContext(ctx) != "tok" || SessionFromContext(ctx).Subject != "u" {
		t.Fatal("expected token and session from context")
	}
	if TokenFromContext(context.Background()) != "" || SessionFromContext(context.Background()) != nil {
		t.Fatal("expected empty values on bare context")
	}
}
