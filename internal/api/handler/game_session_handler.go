package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/api/validation"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

type GameSessionHandler struct {
	service service.GameSessionService
}

func NewGameSessionHandler(service service.GameSessionService) *GameSessionHandler {
	return &GameSessionHandler{service: service}
}

// Create handles POST /v1/users/{userId}/game-sessions
// @Summary Record a mini-game session
// @Description Record a finished game. The payload shape depends on game_family and is validated before storage; an invalid payload is rejected with a malformed-payload problem.
// @Tags game-sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateGameSessionRequest true "Game session"
// @Success 201 {object} domain.GameSessionResponse "Session recorded"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed or malformed payload"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/game-sessions [post]
func (h *GameSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateGameSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User", "record game session")
		return
	}

	writeJSON(w, http.StatusCreated, session.ToResponse())
}

// List handles GET /v1/users/{userId}/game-sessions
// @Summary List game sessions
// @Description Fetch paginated game history, newest first, optionally for one family.
// @Tags game-sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param family query string false "Game family" Enums(attention_focus, stress_response, decision_making, emotion_recognition, memory_match, breathing_bubble)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.GameSessionListResponse
// @Failure 400 {object} problem.Problem "Unknown family"
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/game-sessions [get]
func (h *GameSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	var family *domain.GameFamily
	if raw := r.URL.Query().Get("family"); raw != "" {
		f := domain.GameFamily(raw)
		family = &f
	}

	response, err := h.service.List(r.Context(), userID, family, filter)
	if err != nil {
		writeServiceError(w, r, err, "User", "list game sessions")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
