package handler

import (
	"github.com/fitclub/club-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSessionRequest) ports.CreateSessionInput {
	return ports.CreateSessionInput{
		TrainerID:      req.TrainerID,
		ParticipantIDs: req.ParticipantIDs,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}
}

func toUpdateInput(req updateSessionRequest) ports.UpdateSessionInput {
	return ports.UpdateSessionInput{
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TrainerID:      req.TrainerID,
		ParticipantIDs: req.ParticipantIDs,
	}
}

// --- Service result → HTTP response ---

func toSessionResponse(d *ports.SessionDetail) sessionResponse {
	return sessionResponse{
		ID:           d.ID,
		Date:         d.Date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		TrainerID:    d.TrainerID,
		TrainerName:  d.TrainerName,
		Participants: toUserSummaryResponses(d.Participants),
		Absentees:    toUserSummaryResponses(d.Absentees),
	}
}

func toListResponse(details []ports.SessionDetail) listSessionsResponse {
	items := make([]sessionResponse, len(details))
	for i := range details {
		items[i] = toSessionResponse(&details[i])
	}
	return listSessionsResponse{Data: items}
}

func toUserSummaryResponses(users []ports.UserSummary) []userSummaryResponse {
	out := make([]userSummaryResponse, len(users))
	for i, u := range users {
		out[i] = userSummaryResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		}
	}
	return out
}
