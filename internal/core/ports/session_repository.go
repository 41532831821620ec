package ports

import (
	"context"

	"github.com/fitclub/club-api/internal/core/domain"
)

// SessionRepository defines persistence operations for scheduled sessions.
//
// Save assigns an id on first save and enforces optimistic concurrency on
// subsequent saves: a version mismatch returns domain.ErrSessionConflict and
// leaves the stored document untouched. The participant and absentee sets are
// persisted together with the session in a single atomic write, so a failed
// save never leaves a partial roster behind.
type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session) (*domain.Session, error)
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// DeleteByID removes the session and its membership links. Deleting an
	// id with no matching session is a no-op.
	DeleteByID(ctx context.Context, id string) error
	FindByTrainerID(ctx context.Context, trainerID string) ([]*domain.Session, error)
	// FindByParticipant returns the sessions whose roster contains userID.
	FindByParticipant(ctx context.Context, userID string) ([]*domain.Session, error)
	// FindAllOrderedByDateAndTime is the canonical chronological listing.
	FindAllOrderedByDateAndTime(ctx context.Context) ([]*domain.Session, error)
}
