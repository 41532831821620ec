package ports

import (
	"context"

	"github.com/fitclub/club-api/internal/core/domain"
)

// UpdateUserInput carries the editable profile fields. Trainer toggles the
// TRAINER role on or off; the USER and ADMIN roles are never touched here.
type UpdateUserInput struct {
	Username string
	Email    string
	Trainer  bool
}

// UserService defines user administration use cases.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes a user account. Users cannot delete themselves.
	Delete(ctx context.Context, id string, requestedBy string) error
	// EnsureDefaultAdmin provisions an admin account with the given
	// credentials unless some admin already exists. Idempotent; intended to
	// run once at process start.
	EnsureDefaultAdmin(ctx context.Context, username, email, password string) error
}
