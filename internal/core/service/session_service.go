package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fitclub/club-api/internal/api/metrics"
	"github.com/fitclub/club-api/internal/core/domain"
	"github.com/fitclub/club-api/internal/core/ports"
)

// ParticipantResolver abstracts the roster engine for the lifecycle manager.
type ParticipantResolver interface {
	ResolveParticipants(ctx context.Context, userIDs []string, excludeID string) ([]domain.User, error)
}

// RosterCache abstracts the read-through roster cache (Redis). Cache failures
// are never fatal; callers fall back to the repository.
type RosterCache interface {
	Get(ctx context.Context, sessionID string) (*ports.SessionDetail, bool, error)
	Set(ctx context.Context, sessionID string, detail *ports.SessionDetail) error
	Invalidate(ctx context.Context, sessionID string) error
}

// SessionService implements the session lifecycle: scheduling, partial
// updates, deletion, attendance marking, and role-scoped visibility.
//
// Write paths run as read-modify-write under a per-session mutex, so two
// concurrent updates in this process cannot interleave field writes. Across
// processes the repository's optimistic version check applies and a loser
// gets domain.ErrSessionConflict. Attendance racing a roster update is
// resolved by recomputing absentees from the roster as read at the instant of
// the attendance call; that window is accepted as eventual consistency.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	roster   ParticipantResolver
	cache    RosterCache
	logger   zerolog.Logger

	locks sync.Map // session id -> *sync.Mutex
}

func NewSessionService(
	sessions ports.SessionRepository,
	users ports.UserRepository,
	roster ParticipantResolver,
	cache RosterCache,
	logger zerolog.Logger,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		roster:   roster,
		cache:    cache,
		logger:   logger,
	}
}

func (s *SessionService) lock(sessionID string) func() {
	v, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateSession schedules a new session. The trainer is verified against the
// identity store and excluded from the proposed participant list before
// resolution. Nothing is persisted if any participant id fails to resolve.
func (s *SessionService) CreateSession(ctx context.Context, input ports.CreateSessionInput) (*ports.SessionDetail, error) {
	if err := domain.ValidateTimeWindow(input.Date, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, input.TrainerID); err != nil {
		return nil, fmt.Errorf("resolve trainer %s: %w", input.TrainerID, err)
	}

	participants, err := s.roster.ResolveParticipants(ctx, input.ParticipantIDs, input.TrainerID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		TrainerID:      input.TrainerID,
		ParticipantIDs: userIDs(participants),
		AbsentIDs:      []string{},
	}

	saved, err := s.sessions.Save(ctx, session)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to save session")
		return nil, err
	}

	metrics.SessionsScheduledTotal.Inc()
	s.logger.Info().
		Str("session_id", saved.ID).
		Str("trainer_id", saved.TrainerID).
		Int("participants", len(saved.ParticipantIDs)).
		Msg("session scheduled")

	return s.buildDetail(ctx, saved)
}

// UpdateSession applies a partial patch. Nil fields are left untouched. A
// trainer change always re-resolves the roster (against the supplied
// participant ids, or the current ones when omitted) with the new trainer
// excluded; a participants-only change resolves against the current trainer.
func (s *SessionService) UpdateSession(ctx context.Context, sessionID string, input ports.UpdateSessionInput) error {
	defer s.lock(sessionID)()

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if input.StartTime != nil || input.EndTime != nil {
		start, end := session.StartTime, session.EndTime
		if input.StartTime != nil {
			start = *input.StartTime
		}
		if input.EndTime != nil {
			end = *input.EndTime
		}
		if err := domain.ValidateTimeWindow(session.Date, start, end); err != nil {
			return err
		}
		session.StartTime = start
		session.EndTime = end
	}

	switch {
	case input.TrainerID != nil:
		if _, err := s.users.FindByID(ctx, *input.TrainerID); err != nil {
			return fmt.Errorf("resolve trainer %s: %w", *input.TrainerID, err)
		}
		ids := input.ParticipantIDs
		if ids == nil {
			ids = session.ParticipantIDs
		}
		participants, err := s.roster.ResolveParticipants(ctx, ids, *input.TrainerID)
		if err != nil {
			return err
		}
		session.TrainerID = *input.TrainerID
		session.ParticipantIDs = userIDs(participants)
	case input.ParticipantIDs != nil:
		participants, err := s.roster.ResolveParticipants(ctx, input.ParticipantIDs, session.TrainerID)
		if err != nil {
			return err
		}
		session.ParticipantIDs = userIDs(participants)
	}

	// Roster replacement may have orphaned absentees; the absentee set is a
	// subset of the participant set at all times.
	session.AbsentIDs = intersect(session.AbsentIDs, session.ParticipantIDs)

	if _, err := s.sessions.Save(ctx, session); err != nil {
		if errors.Is(err, domain.ErrSessionConflict) {
			metrics.SessionUpdateConflictsTotal.Inc()
		}
		return err
	}

	s.invalidate(ctx, sessionID)
	s.logger.Info().Str("session_id", sessionID).Msg("session updated")
	return nil
}

// DeleteSession removes a session and its membership links. Deleting an
// unknown id is a no-op; callers needing existence confirmation should call
// GetSession first.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteByID(ctx, sessionID); err != nil {
		return err
	}
	s.invalidate(ctx, sessionID)
	metrics.SessionsDeletedTotal.Inc()
	s.logger.Info().Str("session_id", sessionID).Msg("session deleted")
	return nil
}

// MarkAttendance replaces the session's absentee set: every participant whose
// id is missing from presentUserIDs is marked absent. An empty present list
// marks the whole roster absent. Ids that are not on the roster are ignored.
func (s *SessionService) MarkAttendance(ctx context.Context, sessionID string, presentUserIDs []string) error {
	defer s.lock(sessionID)()

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}

	present := make(map[string]struct{}, len(presentUserIDs))
	for _, id := range presentUserIDs {
		present[id] = struct{}{}
	}

	absent := make([]string, 0, len(session.ParticipantIDs))
	for _, id := range session.ParticipantIDs {
		if _, ok := present[id]; !ok {
			absent = append(absent, id)
		}
	}
	session.AbsentIDs = absent

	if _, err := s.sessions.Save(ctx, session); err != nil {
		return err
	}

	s.invalidate(ctx, sessionID)
	metrics.AttendanceMarkedTotal.Inc()
	s.logger.Info().
		Str("session_id", sessionID).
		Int("absent", len(absent)).
		Msg("attendance marked")
	return nil
}

// GetSession returns the session's roster view, read through the cache.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ports.SessionDetail, error) {
	if detail, ok, err := s.cache.Get(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("roster cache read failed")
	} else if ok {
		return detail, nil
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	detail, err := s.buildDetail(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sessionID, detail); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("roster cache write failed")
	}
	return detail, nil
}

// ListSessions returns every session in canonical chronological order.
func (s *SessionService) ListSessions(ctx context.Context) ([]ports.SessionDetail, error) {
	sessions, err := s.sessions.FindAllOrderedByDateAndTime(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildDetails(ctx, sessions)
}

// SessionsVisibleTo computes role-scoped visibility: admins see every
// session; everyone else sees the sessions they participate in plus the
// sessions they train, concatenated. Trainer exclusivity should make the two
// lists disjoint; a session appearing in both is an invariant breach and is
// logged rather than silently deduplicated.
func (s *SessionService) SessionsVisibleTo(ctx context.Context, user *domain.User) ([]ports.SessionDetail, error) {
	if user.IsAdmin() {
		return s.ListSessions(ctx)
	}

	asParticipant, err := s.sessions.FindByParticipant(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	asTrainer, err := s.sessions.FindByTrainerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(asParticipant))
	for _, sess := range asParticipant {
		seen[sess.ID] = struct{}{}
	}
	for _, sess := range asTrainer {
		if _, ok := seen[sess.ID]; ok {
			s.logger.Error().
				Str("session_id", sess.ID).
				Str("user_id", user.ID).
				Msg("trainer listed as participant of own session")
		}
	}

	visible := append(asParticipant, asTrainer...)
	return s.buildDetails(ctx, visible)
}

func (s *SessionService) buildDetails(ctx context.Context, sessions []*domain.Session) ([]ports.SessionDetail, error) {
	domain.SortSessionsChronologically(sessions)

	details := make([]ports.SessionDetail, 0, len(sessions))
	for _, sess := range sessions {
		detail, err := s.buildDetail(ctx, sess)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// buildDetail resolves the trainer name and the username-ordered participant
// and absentee lists for one session. Ordering is applied on every read; it
// is never a stored property of the session.
func (s *SessionService) buildDetail(ctx context.Context, session *domain.Session) (*ports.SessionDetail, error) {
	trainer, err := s.users.FindByID(ctx, session.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("resolve trainer %s: %w", session.TrainerID, err)
	}

	participants := make([]domain.User, 0, len(session.ParticipantIDs))
	byID := make(map[string]domain.User, len(session.ParticipantIDs))
	for _, id := range session.ParticipantIDs {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve participant %s: %w", id, err)
		}
		participants = append(participants, *user)
		byID[id] = *user
	}

	absentees := make([]domain.User, 0, len(session.AbsentIDs))
	for _, id := range session.AbsentIDs {
		if user, ok := byID[id]; ok {
			absentees = append(absentees, user)
		}
	}

	domain.SortUsersByUsername(participants)
	domain.SortUsersByUsername(absentees)

	return &ports.SessionDetail{
		ID:           session.ID,
		Date:         session.Date,
		StartTime:    session.StartTime,
		EndTime:      session.EndTime,
		TrainerID:    session.TrainerID,
		TrainerName:  trainer.Username,
		Participants: toSummaries(participants),
		Absentees:    toSummaries(absentees),
	}, nil
}

func (s *SessionService) invalidate(ctx context.Context, sessionID string) {
	if err := s.cache.Invalidate(ctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("roster cache invalidation failed")
	}
}

func userIDs(users []domain.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func toSummaries(users []domain.User) []ports.UserSummary {
	out := make([]ports.UserSummary, len(users))
	for i, u := range users {
		out[i] = ports.UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
	}
	return out
}

func intersect(subset, within []string) []string {
	allowed := make(map[string]struct{}, len(within))
	for _, id := range within {
		allowed[id] = struct{}{}
	}
	kept := make([]string, 0, len(subset))
	for _, id := range subset {
		if _, ok := allowed[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}
