package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fitclub/club-api/internal/core/domain"
	"github.com/fitclub/club-api/internal/core/ports"
)

// RosterEngine resolves raw participant id lists into validated, deduplicated
// user sets. It is the single place the trainer-exclusivity rule is applied:
// the excluded id is dropped from the input list before resolution, so no
// caller can sneak a session's trainer onto its own roster.
type RosterEngine struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRosterEngine(users ports.UserRepository, logger zerolog.Logger) *RosterEngine {
	return &RosterEngine{users: users, logger: logger}
}

// ResolveParticipants resolves userIDs against the identity store. Duplicate
// ids collapse to a single membership, and excludeID (the trainer, when
// non-empty) is removed before any lookup happens. If any id fails to
// resolve, the whole resolution fails with domain.ErrUserNotFound wrapping
// the offending id; partial rosters are never returned.
func (e *RosterEngine) ResolveParticipants(ctx context.Context, userIDs []string, excludeID string) ([]domain.User, error) {
	seen := make(map[string]struct{}, len(userIDs))
	resolved := make([]domain.User, 0, len(userIDs))

	for _, id := range userIDs {
		if id == "" || id == excludeID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		user, err := e.users.FindByID(ctx, id)
		if err != nil {
			e.logger.Warn().Str("user_id", id).Msg("roster resolution failed")
			return nil, fmt.Errorf("resolve participant %s: %w", id, err)
		}
		resolved = append(resolved, *user)
	}

	return resolved, nil
}
