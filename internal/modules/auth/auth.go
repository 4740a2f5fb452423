package auth

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotConfigured      = errors.New("admin login is not configured")
)

// Service defines the interface for admin authentication.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) (*jwt.StandardClaims, error)
}
