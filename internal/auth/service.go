package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid password")

// Service gates the admin surface behind a single shared password.
type Service struct {
	passwordHash string
}

// NewService takes the bcrypt hash of the admin password.
func NewService(passwordHash string) *Service {
	return &Service{passwordHash: passwordHash}
}

// Login checks the admin password and issues a session token.
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.passwordHash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken()
}
