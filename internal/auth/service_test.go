package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestLogin_CorrectPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("brew-admin"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	service := NewService(string(hash))

	token, err := service.Login("brew-admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "ADMIN" {
		t.Errorf("expected ADMIN role, got %q", role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("brew-admin"), bcrypt.DefaultCost)
	service := NewService(string(hash))

	if _, err := service.Login("guess"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := service.Login(""); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
