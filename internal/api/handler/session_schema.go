package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createSessionRequest struct {
	Date           string   `json:"date"            validate:"required,datetime=2006-01-02"`
	StartTime      string   `json:"start_time"      validate:"required,datetime=15:04"`
	EndTime        string   `json:"end_time"        validate:"required,datetime=15:04"`
	TrainerID      string   `json:"trainer_id"      validate:"required"`
	ParticipantIDs []string `json:"participant_ids"`
}

// updateSessionRequest is a partial patch: absent fields leave the session
// untouched. participant_ids, when present (even empty), replaces the roster.
type updateSessionRequest struct {
	StartTime      *string  `json:"start_time,omitempty"      validate:"omitempty,datetime=15:04"`
	EndTime        *string  `json:"end_time,omitempty"        validate:"omitempty,datetime=15:04"`
	TrainerID      *string  `json:"trainer_id,omitempty"`
	ParticipantIDs []string `json:"participant_ids,omitempty"`
}

type markAttendanceRequest struct {
	PresentUserIDs []string `json:"present_user_ids"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type userSummaryResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type sessionResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	StartTime    string                `json:"start_time"`
	EndTime      string                `json:"end_time"`
	TrainerID    string                `json:"trainer_id"`
	TrainerName  string                `json:"trainer_name"`
	Participants []userSummaryResponse `json:"participants"`
	Absentees    []userSummaryResponse `json:"absentees"`
}

type listSessionsResponse struct {
	Data []sessionResponse `json:"data"`
}
