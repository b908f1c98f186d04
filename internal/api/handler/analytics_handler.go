package handler

import (
	"fmt"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

// AnalyticsHandler handles analytics runs and the read views built from their results.
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Run handles POST /v1/users/{userId}/analytics/run
// @Summary Run analytics
// @Description Detect mood patterns, compute the score snapshot and generate insights for the user, persisting all three atomically.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Scoring window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.AnalyticsRunResult "Run result"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "Record store unavailable"
// @Router /users/{userId}/analytics/run [post]
func (h *AnalyticsHandler) Run(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	windowDays, ok := parseIntParam(r, "window_days", domain.DefaultAnalyticsWindowDays)
	if !ok || windowDays < 1 || windowDays > domain.MaxAnalyticsWindowDays {
		problem.BadRequest(fmt.Sprintf("window_days must be between 1 and %d", domain.MaxAnalyticsWindowDays)).Write(w)
		return
	}

	result, err := h.service.Run(r.Context(), userID, windowDays)
	if err != nil {
		writeServiceError(w, r, err, "User", "run analytics")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Summary handles GET /v1/users/{userId}/analytics/summary
// @Summary Engagement summary
// @Description Weekly and monthly mood averages, trend, most effective activity and streaks.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.EngagementSummary
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/summary [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "User", "compute summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Patterns handles GET /v1/users/{userId}/analytics/patterns
// @Summary Latest mood patterns
// @Description Patterns persisted by the most recent analytics run. Empty until a run has detected something.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.PatternListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analytics/patterns [get]
func (h *AnalyticsHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	patterns, err := h.service.LatestPatterns(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "User", "list patterns")
		return
	}
	if patterns == nil {
		patterns = []domain.MoodPattern{}
	}

	writeJSON(w, http.StatusOK, domain.PatternListResponse{Data: patterns})
}

// Streak handles GET /v1/users/{userId}/streak
// @Summary Current logging streak
// @Description Consecutive local calendar days with at least one mood entry, counted back from today or yesterday.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.StreakResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/streak [get]
func (h *AnalyticsHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	streak, err := h.service.Streak(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "User", "compute streak")
		return
	}

	writeJSON(w, http.StatusOK, streak)
}
