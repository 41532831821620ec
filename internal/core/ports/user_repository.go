package ports

import (
	"context"

	"github.com/fitclub/club-api/internal/core/domain"
)

// UserRepository is the identity store contract. The core depends on it for
// lookups and existence checks; credentials are opaque payload as far as the
// session logic is concerned.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByRole returns all users holding the role, ordered by username.
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	// FindAllOrderedByUsername returns every user, ordered by username.
	FindAllOrderedByUsername(ctx context.Context) ([]domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
