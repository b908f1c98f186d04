package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/wellbeing-tracker/internal/api/validation"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
)

type CheckInHandler struct {
	service service.CheckInService
}

func NewCheckInHandler(service service.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// CreateSocial handles POST /v1/users/{userId}/check-ins/social
// @Summary Social check-in
// @Description Record whether the user talked to someone and how connected they felt.
// @Tags check-ins
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateSocialCheckInRequest true "Social check-in"
// @Success 201 {object} domain.SocialInteraction
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/check-ins/social [post]
func (h *CheckInHandler) CreateSocial(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateSocialCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	checkIn, err := h.service.CreateSocial(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User", "record social check-in")
		return
	}

	writeJSON(w, http.StatusCreated, checkIn)
}

// CreateEnergy handles POST /v1/users/{userId}/check-ins/energy
// @Summary Energy check-in
// @Description Record the user's energy and motivation levels.
// @Tags check-ins
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateEnergyCheckInRequest true "Energy check-in"
// @Success 201 {object} domain.EnergyCheckIn
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/check-ins/energy [post]
func (h *CheckInHandler) CreateEnergy(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateEnergyCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	checkIn, err := h.service.CreateEnergy(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "User", "record energy check-in")
		return
	}

	writeJSON(w, http.StatusCreated, checkIn)
}
