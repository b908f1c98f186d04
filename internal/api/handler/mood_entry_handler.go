package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/api/validation"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

type MoodEntryHandler struct {
	service service.MoodEntryService
}

func NewMoodEntryHandler(service service.MoodEntryService) *MoodEntryHandler {
	return &MoodEntryHandler{service: service}
}

// Create handles POST /v1/users/{userId}/mood-entries
// @Summary Log a mood
// @Description Log a 1-5 mood value with an optional journal note. created_at may back-fill a past entry.
// @Tags mood-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateMoodEntryRequest true "Mood entry"
// @Success 201 {object} domain.MoodEntryResponse "Mood entry created"
// @Failure 400 {object} problem.Problem "Invalid request body or future timestamp"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries [post]
func (h *MoodEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User", "create mood entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry.ToResponse())
}

// UpdateJournal handles PATCH /v1/users/{userId}/mood-entries/{entryId}
// @Summary Edit a journal note
// @Description Replace the journal text of a mood entry. The mood value itself is immutable.
// @Tags mood-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Mood entry UUID" format(uuid)
// @Param request body domain.UpdateMoodEntryRequest true "New journal text"
// @Success 200 {object} domain.MoodEntryResponse "Updated entry"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User or entry not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries/{entryId} [patch]
func (h *MoodEntryHandler) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}
	entryID, ok := parseUUIDParam(w, r, "entryId", "mood entry")
	if !ok {
		return
	}

	var req domain.UpdateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.UpdateJournal(r.Context(), userID, entryID, &req)
	if err != nil {
		writeServiceError(w, r, err, "Mood entry", "update mood entry")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// List handles GET /v1/users/{userId}/mood-entries
// @Summary List mood entries
// @Description Fetch paginated mood history, newest first. Filter by date range.
// @Tags mood-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.MoodEntryListResponse "Mood entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid path parameter"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries [get]
func (h *MoodEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, "User", "list mood entries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
