package service

import (
	"context"
	"errors"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/llm"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	narrativeTraceName = "wellbeing-narrative"
	feedbackScoreName  = "user_rating"
)

// NarrativeService asks the LLM to describe results the engine already computed.
type NarrativeService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error)
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
}

type narrativeService struct {
	analytics AnalyticsService
	llmClient llm.NarrativeLLM
	langfuse  langfuse.Client
	userRepo  repository.UserRepository
}

func NewNarrativeService(analytics AnalyticsService, llmClient llm.NarrativeLLM, langfuseClient langfuse.Client, userRepo repository.UserRepository) NarrativeService {
	return &narrativeService{
		analytics: analytics,
		llmClient: llmClient,
		langfuse:  langfuseClient,
		userRepo:  userRepo,
	}
}

func (s *narrativeService) Generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error) {
	narrativeCtx, err := s.buildContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	output, err := s.llmClient.GenerateNarrative(ctx, narrativeCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.NarrativeResponse{
		Context:   *narrativeCtx,
		Narrative: *output,
	}

	// The OTEL trace ID links feedback to the request span; the Langfuse
	// trace reuses it when both are present.
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		response.TraceID = span.SpanContext().TraceID().String()
	}
	if s.langfuse != nil && s.langfuse.IsEnabled() {
		traceID, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
			ID:     response.TraceID,
			UserID: userID.String(),
			Name:   narrativeTraceName,
			Input:  narrativeCtx,
			Output: output,
			Tags:   []string{"wellbeing-tracker", "narrative"},
		})
		if err == nil && traceID != "" {
			response.TraceID = traceID
		}
	}

	return response, nil
}

func (s *narrativeService) buildContext(ctx context.Context, userID uuid.UUID) (*domain.NarrativeContext, error) {
	summary, err := s.analytics.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	patterns, err := s.analytics.LatestPatterns(ctx, userID)
	if err != nil {
		return nil, err
	}

	narrativeCtx := &domain.NarrativeContext{
		Summary:  *summary,
		Patterns: patterns,
	}

	// A user who never ran the engine has no snapshot yet.
	report, err := s.analytics.LatestScores(ctx, userID)
	switch {
	case err == nil:
		narrativeCtx.Snapshot = &report.Snapshot
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	insights, err := s.analytics.ListInsights(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	narrativeCtx.Insights = insights.Data

	return narrativeCtx, nil
}

// SubmitFeedback forwards a rating to Langfuse. Feedback is accepted even when
// Langfuse is disabled.
func (s *narrativeService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return err
	}
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		return nil
	}
	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}
