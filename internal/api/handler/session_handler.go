package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitclub/club-api/internal/core/ports"
)

// SessionHandler handles HTTP requests for session scheduling, attendance
// and roster reads.
type SessionHandler struct {
	sessions ports.SessionService
	users    ports.UserService
}

func NewSessionHandler(sessions ports.SessionService, users ports.UserService) *SessionHandler {
	return &SessionHandler{sessions: sessions, users: users}
}

// Create handles POST /v1/sessions.
//
// @Summary      Schedule a new class session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSessionRequest  true  "Session details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.sessions.CreateSession(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSessionResponse(detail))
}

// Update handles PUT /v1/sessions/:id. The body is a partial patch.
//
// @Summary      Update a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Session id"
// @Param        body  body      updateSessionRequest  true  "Fields to change"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sessions/{id} [put]
func (h *SessionHandler) Update(c echo.Context) error {
	var req updateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if err := h.sessions.UpdateSession(c.Request().Context(), id, toUpdateInput(req)); err != nil {
		return err
	}

	detail, err := h.sessions.GetSession(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(detail))
}

// Delete handles DELETE /v1/sessions/:id. Deleting a missing session still
// returns 204.
//
// @Summary      Delete a session
// @Tags         sessions
// @Security     BearerAuth
// @Param        id  path  string  true  "Session id"
// @Success      204
// @Router       /v1/sessions/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.sessions.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAttendance handles POST /v1/sessions/:id/attendance. The body lists the
// participants who showed up; everyone else on the roster is recorded absent.
//
// @Summary      Record attendance for a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Session id"
// @Param        body  body      markAttendanceRequest  true  "Present participants"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/sessions/{id}/attendance [post]
func (h *SessionHandler) MarkAttendance(c echo.Context) error {
	var req markAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id := c.Param("id")
	if err := h.sessions.MarkAttendance(c.Request().Context(), id, req.PresentUserIDs); err != nil {
		return err
	}

	detail, err := h.sessions.GetSession(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(detail))
}

// Get handles GET /v1/sessions/:id.
//
// @Summary      Get a session with its resolved roster
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Session id"
// @Success      200 {object}  sessionResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/sessions/{id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	detail, err := h.sessions.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(detail))
}

// List handles GET /v1/sessions. Admins see the whole schedule; everyone else
// sees the sessions they train plus the sessions they are enrolled in.
//
// @Summary      List sessions visible to the caller
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSessionsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	caller, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	details, err := h.sessions.SessionsVisibleTo(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(details))
}
