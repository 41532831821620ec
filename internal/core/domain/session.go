package domain

import (
	"errors"
	"slices"
	"time"
)

// Layouts for the date and time-of-day fields on a session. Both are
// zero-padded, so lexicographic order matches chronological order.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidTimeRange = errors.New("invalid session time range")
var ErrSessionConflict = errors.New("session modified concurrently")
var ErrForbidden = errors.New("access forbidden")

// Session is one scheduled, trainer-led class occurrence. The participant and
// absentee id sets are owned by the session; absentees are always a subset of
// participants and are replaced wholesale each time attendance is marked.
type Session struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Date           string    `json:"date" bson:"date"`
	StartTime      string    `json:"start_time" bson:"start_time"`
	EndTime        string    `json:"end_time" bson:"end_time"`
	TrainerID      string    `json:"trainer_id" bson:"trainer_id"`
	ParticipantIDs []string  `json:"participant_ids" bson:"participant_ids"`
	AbsentIDs      []string  `json:"absent_ids" bson:"absent_ids"`
	Version        int64     `json:"version" bson:"version"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// HasParticipant reports whether userID is on the session's roster.
func (s *Session) HasParticipant(userID string) bool {
	return slices.Contains(s.ParticipantIDs, userID)
}

// ValidateTimeWindow checks that date, start and end parse under the session
// layouts and that the window is non-empty (start strictly before end).
func ValidateTimeWindow(date, start, end string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidTimeRange
	}
	startT, err := time.Parse(TimeLayout, start)
	if err != nil {
		return ErrInvalidTimeRange
	}
	endT, err := time.Parse(TimeLayout, end)
	if err != nil {
		return ErrInvalidTimeRange
	}
	if !startT.Before(endT) {
		return ErrInvalidTimeRange
	}
	return nil
}
