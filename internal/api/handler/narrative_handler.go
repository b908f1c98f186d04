package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/api/validation"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// NarrativeHandler handles the LLM narrative endpoints.
type NarrativeHandler struct {
	service service.NarrativeService
}

// NewNarrativeHandler creates a new NarrativeHandler.
func NewNarrativeHandler(service service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{service: service}
}

// Get handles GET /v1/users/{userId}/analytics/narrative
// @Summary Get LLM-written wellbeing narrative
// @Description Summarize the latest summary, score snapshot, patterns and insights into a short narrative.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.NarrativeResponse "Narrative with the context it was written from"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/analytics/narrative [get]
func (h *NarrativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "User", "generate narrative")
		return
	}

	// Fall back to the OTEL trace ID so feedback can still be linked
	if result.TraceID == "" {
		span := trace.SpanFromContext(r.Context())
		if span.SpanContext().IsValid() {
			result.TraceID = span.SpanContext().TraceID().String()
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// PostFeedback handles POST /v1/users/{userId}/analytics/narrative/feedback
// @Summary Rate a narrative
// @Description Submit a 1-5 rating and optional comment for a previously returned narrative.
// @Tags analytics
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param body body domain.NarrativeFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analytics/narrative/feedback [post]
func (h *NarrativeHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.NarrativeFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.SubmitFeedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, r, err, "User", "submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
