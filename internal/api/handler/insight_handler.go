package handler

import (
	"net/http"
	"strconv"

	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

type InsightHandler struct {
	service service.AnalyticsService
}

func NewInsightHandler(service service.AnalyticsService) *InsightHandler {
	return &InsightHandler{service: service}
}

// List handles GET /v1/users/{userId}/insights
// @Summary List insights
// @Description Insights generated by analytics runs, newest first.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param unacknowledged query boolean false "Only return insights the user has not acknowledged"
// @Success 200 {object} domain.InsightListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/insights [get]
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	unackOnly := false
	if raw := r.URL.Query().Get("unacknowledged"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			problem.BadRequest("unacknowledged must be a boolean").Write(w)
			return
		}
		unackOnly = parsed
	}

	insights, err := h.service.ListInsights(r.Context(), userID, unackOnly)
	if err != nil {
		writeServiceError(w, r, err, "User", "list insights")
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

// Acknowledge handles POST /v1/users/{userId}/insights/{insightId}/acknowledge
// @Summary Acknowledge an insight
// @Description Mark an insight as seen. Acknowledging twice is a no-op.
// @Tags insights
// @Param userId path string true "User UUID" format(uuid)
// @Param insightId path string true "Insight UUID" format(uuid)
// @Success 204 "Acknowledged"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or insight not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/insights/{insightId}/acknowledge [post]
func (h *InsightHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}
	insightID, ok := parseUUIDParam(w, r, "insightId", "insight")
	if !ok {
		return
	}

	if err := h.service.AcknowledgeInsight(r.Context(), userID, insightID); err != nil {
		writeServiceError(w, r, err, "Insight", "acknowledge insight")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
