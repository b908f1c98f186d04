package handler

import (
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

const defaultScoreHistoryDays = 90

type ScoreHandler struct {
	service service.AnalyticsService
}

func NewScoreHandler(service service.AnalyticsService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// Latest handles GET /v1/users/{userId}/scores/latest
// @Summary Latest score snapshot
// @Description The most recent score snapshot with per-index interpretations and recommendations.
// @Tags scores
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ScoreReport
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or no snapshot yet"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/scores/latest [get]
func (h *ScoreHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	report, err := h.service.LatestScores(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Score snapshot", "get latest scores")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// History handles GET /v1/users/{userId}/scores/history
// @Summary Score history
// @Description Snapshots calculated within the last N days, oldest first.
// @Tags scores
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Lookback in days" default(90) minimum(1) maximum(365)
// @Success 200 {object} domain.ScoreHistoryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/scores/history [get]
func (h *ScoreHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	days, ok := parseIntParam(r, "days", defaultScoreHistoryDays)
	if !ok {
		problem.BadRequest("days must be an integer").Write(w)
		return
	}

	history, err := h.service.ScoreHistory(r.Context(), userID, days)
	if err != nil {
		writeServiceError(w, r, err, "User", "get score history")
		return
	}

	writeJSON(w, http.StatusOK, history)
}
