package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/llm"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// @title Wellbeing Tracker API
// @version 1.0
// @description Mood, activity and mini-game telemetry with deterministic wellbeing analytics and scoring.
// @BasePath /v1

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseUUIDParam reads a UUID path parameter, writing a 400 problem when it is malformed.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		problem.BadRequest("Invalid " + label + " ID format").WithInstance(r.URL.Path).Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service errors onto problem responses. notFound
// names the missing resource; action describes the failed operation.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, action string) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(notFound + " not found")
	case errors.Is(err, domain.ErrMalformedPayload):
		p = problem.MalformedPayload(err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		p = problem.BadRequest(err.Error())
	case errors.Is(err, domain.ErrConflict):
		p = problem.Conflict(err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		p = problem.ServiceUnavailable("Record store is unavailable, try again later")
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		p = problem.ServiceUnavailable("OpenAI service is not configured")
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		p = problem.BadGateway("Failed to generate narrative from LLM")
	default:
		p = problem.InternalError("Failed to " + action)
	}
	p.WithInstance(r.URL.Path).Write(w)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func parseListFilter(r *http.Request) (domain.ListFilter, []problem.FieldError) {
	var filter domain.ListFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
