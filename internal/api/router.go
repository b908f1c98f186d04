package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/wellbeing-tracker/docs"
	"github.com/blaisecz/wellbeing-tracker/internal/api/handler"
	"github.com/blaisecz/wellbeing-tracker/internal/api/middleware"
	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Handlers struct {
	User        *handler.UserHandler
	MoodEntry   *handler.MoodEntryHandler
	Activity    *handler.ActivityHandler
	GameSession *handler.GameSessionHandler
	CheckIn     *handler.CheckInHandler
	Analytics   *handler.AnalyticsHandler
	Score       *handler.ScoreHandler
	Insight     *handler.InsightHandler
	Narrative   *handler.NarrativeHandler
}

type Router struct {
	handlers Handlers
	log      *logger.Logger
	metrics  *metrics.Metrics
}

func NewRouter(handlers Handlers, log *logger.Logger, m *metrics.Metrics) *Router {
	return &Router{
		handlers: handlers,
		log:      log,
		metrics:  m,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()
	h := rt.handlers

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.User.GetByID)

				r.Route("/mood-entries", func(r chi.Router) {
					r.Post("/", h.MoodEntry.Create)
					r.Get("/", h.MoodEntry.List)
					r.Patch("/{entryId}", h.MoodEntry.UpdateJournal)
				})

				r.Route("/activities", func(r chi.Router) {
					r.Post("/", h.Activity.Create)
					r.Get("/", h.Activity.List)
				})

				r.Route("/game-sessions", func(r chi.Router) {
					r.Post("/", h.GameSession.Create)
					r.Get("/", h.GameSession.List)
				})

				r.Post("/check-ins/social", h.CheckIn.CreateSocial)
				r.Post("/check-ins/energy", h.CheckIn.CreateEnergy)

				r.Route("/analytics", func(r chi.Router) {
					r.Post("/run", h.Analytics.Run)
					r.Get("/summary", h.Analytics.Summary)
					r.Get("/patterns", h.Analytics.Patterns)
					r.Get("/narrative", h.Narrative.Get)
					r.Post("/narrative/feedback", h.Narrative.PostFeedback)
				})

				r.Get("/scores/latest", h.Score.Latest)
				r.Get("/scores/history", h.Score.History)

				r.Get("/insights", h.Insight.List)
				r.Post("/insights/{insightId}/acknowledge", h.Insight.Acknowledge)

				r.Get("/streak", h.Analytics.Streak)
			})
		})
	})

	return r
}
