package ports

import (
	"context"

	"github.com/fitclub/club-api/internal/core/domain"
)

// CreateSessionInput carries all data needed to schedule a new session.
// ParticipantIDs may contain duplicates and may contain the trainer; both are
// collapsed away during roster resolution.
type CreateSessionInput struct {
	TrainerID      string
	ParticipantIDs []string
	Date           string
	StartTime      string
	EndTime        string
}

// UpdateSessionInput carries a partial patch. Nil fields leave the
// corresponding session field untouched. A non-nil ParticipantIDs (even an
// empty slice) replaces the roster.
type UpdateSessionInput struct {
	StartTime      *string
	EndTime        *string
	TrainerID      *string
	ParticipantIDs []string
}

// UserSummary is the reduced user view embedded in roster reads.
type UserSummary struct {
	ID       string
	Username string
	Email    string
}

// SessionDetail is the full roster view of one session. Participants and
// Absentees are always ordered by username; the trainer name is resolved at
// read time from the identity store.
type SessionDetail struct {
	ID           string
	Date         string
	StartTime    string
	EndTime      string
	TrainerID    string
	TrainerName  string
	Participants []UserSummary
	Absentees    []UserSummary
}

// SessionService defines the session lifecycle use cases. All read results
// are pre-ordered: session lists chronologically, rosters by username.
type SessionService interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*SessionDetail, error)
	UpdateSession(ctx context.Context, sessionID string, input UpdateSessionInput) error
	DeleteSession(ctx context.Context, sessionID string) error
	// MarkAttendance replaces the session's absentee set wholesale: every
	// participant not listed in presentUserIDs becomes absent. An empty
	// list marks everyone absent.
	MarkAttendance(ctx context.Context, sessionID string, presentUserIDs []string) error
	GetSession(ctx context.Context, sessionID string) (*SessionDetail, error)
	ListSessions(ctx context.Context) ([]SessionDetail, error)
	// SessionsVisibleTo returns every session for admins, and the union of
	// trainer-led and participated sessions for everyone else.
	SessionsVisibleTo(ctx context.Context, user *domain.User) ([]SessionDetail, error)
}
