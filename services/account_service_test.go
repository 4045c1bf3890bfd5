package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codeclinic/code_clinic/services"
	"go.uber.org/zap"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAccountService(db, zap.NewNop())

	if _, err := svc.Register(context.Background(), "ada@example.com", "Ada", "secret123", false); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), "ada@example.com", "Other Ada", "secret456", true)
	if !errors.Is(err, services.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got: %v", err)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAccountService(db, zap.NewNop())

	if _, err := svc.Register(context.Background(), "  Ada@Example.COM ", "Ada", "secret123", false); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, err := svc.Register(context.Background(), "ada@example.com", "Ada", "secret123", false)
	if !errors.Is(err, services.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for normalized duplicate, got: %v", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAccountService(db, zap.NewNop())

	if _, err := svc.Register(context.Background(), "ada@example.com", "Ada", "secret123", false); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "ada@example.com", "wrong-password"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got: %v", err)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAccountService(db, zap.NewNop())

	registered, err := svc.Register(context.Background(), "ada@example.com", "Ada", "secret123", true)
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	account, err := svc.Authenticate(context.Background(), "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("authentication failed: %v", err)
	}
	if account.ID != registered.ID {
		t.Fatalf("authenticated wrong account: got %s, want %s", account.ID, registered.ID)
	}
	if !account.IsVolunteer {
		t.Fatalf("volunteer flag not persisted")
	}
}
