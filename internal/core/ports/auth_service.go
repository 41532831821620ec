package ports

import (
	"context"

	"github.com/fitclub/club-api/internal/core/domain"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates an account with the default USER role. Username and
	// email are trimmed and lowercased before the uniqueness check.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error
}
