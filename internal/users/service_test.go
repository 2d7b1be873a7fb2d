package users

import (
	"context"
	"errors"
	"testing"

	"resume-analyzer/internal/shared/auth"
)

func newTestService() *Service {
	return NewService(
		NewMemoryRepo(),
		auth.NewHasher(4),
		auth.NewTokenIssuer("test-secret", 0),
	)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jane@Example.com", "hunter2secret", "Jane Doe")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}

	token, got, err := svc.Authenticate(ctx, "jane@example.com", "hunter2secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected access token")
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %q, got %q", user.ID, got.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dup@example.com", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "DUP@example.com", "password456", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "not-an-email", "password123", ""); err == nil {
		t.Fatalf("expected error for invalid email")
	}
	if _, err := svc.Register(ctx, "ok@example.com", "short", ""); err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "jane@example.com", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := svc.Authenticate(ctx, "jane@example.com", "wrongpass99")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	_, _, err = svc.Authenticate(ctx, "nobody@example.com", "password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
