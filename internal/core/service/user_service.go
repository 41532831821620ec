package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitclub/club-api/internal/core/domain"
	"github.com/fitclub/club-api/internal/core/ports"
)

// UserService implements user administration on top of the identity store.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// ListByRole returns the users holding role, ordered by username.
func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.users.FindByRole(ctx, role)
}

// ListAll returns every user, ordered by username.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAllOrderedByUsername(ctx)
}

// Update changes a user's username, email, and TRAINER role. Username and
// email changes are checked for uniqueness; the other roles are untouched.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != user.Username {
		taken, err := s.users.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrUserExists
		}
		user.Username = input.Username
	}

	if input.Email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrUserExists
		}
		user.Email = input.Email
	}

	user.Roles = toggleRole(user.Roles, domain.RoleTrainer, input.Trainer)
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// Delete removes a user account. Self-deletion is rejected so an admin
// cannot lock themselves out mid-session.
func (s *UserService) Delete(ctx context.Context, id string, requestedBy string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == requestedBy {
		return domain.ErrForbidden
	}

	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("requested_by", requestedBy).Msg("user deleted")
	return nil
}

// EnsureDefaultAdmin provisions the bootstrap admin account when no user
// holds the ADMIN role yet. Safe to call on every start.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	admins, err := s.users.FindByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []domain.Role{domain.RoleAdmin, domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("default admin provisioned")
	return nil
}

func toggleRole(roles []domain.Role, role domain.Role, on bool) []domain.Role {
	out := make([]domain.Role, 0, len(roles)+1)
	for _, r := range roles {
		if r != role {
			out = append(out, r)
		}
	}
	if on {
		out = append(out, role)
	}
	return out
}
