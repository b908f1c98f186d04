// Package langfuse talks to the Langfuse ingestion API for narrative traces and
// user feedback scores. Without credentials every call is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/google/uuid"
)

const (
	sendTimeout   = 5 * time.Second
	ingestionPath = "/api/public/ingestion"

	eventTraceCreate = "trace-create"
	eventScoreCreate = "score-create"

	scoreTypeNumeric = "NUMERIC"
)

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score for an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush waits for queued events or until ctx is done.
	Flush(ctx context.Context) error
}

// TraceInput describes a narrative trace.
type TraceInput struct {
	ID       string // generated when empty
	UserID   string
	Name     string
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput describes a numeric score on a trace, e.g. a user rating.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

// missingSetting names the first absent credential, or "" when complete.
func (c Config) missingSetting() string {
	switch {
	case c.BaseURL == "":
		return "LANGFUSE_BASE_URL"
	case c.PublicKey == "":
		return "LANGFUSE_PUBLIC_KEY"
	case c.SecretKey == "":
		return "LANGFUSE_SECRET_KEY"
	}
	return ""
}

type client struct {
	cfg        Config
	enabled    bool
	httpClient *http.Client
	log        *logger.Logger
	inflight   sync.WaitGroup
}

// NewClient returns a client that sends events in the background.
// A nil log discards client logs.
func NewClient(cfg Config, log *logger.Logger) Client {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "langfuse")

	missing := cfg.missingSetting()
	if missing != "" {
		log.Info("langfuse disabled", "missing", missing)
	} else {
		log.Info("langfuse enabled", "base_url", cfg.BaseURL, "env", cfg.Environment)
	}

	return &client{
		cfg:        cfg,
		enabled:    missing == "",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(_ context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := in.Metadata
	if c.cfg.Environment != "" {
		merged := make(map[string]any, len(metadata)+1)
		for k, v := range metadata {
			merged[k] = v
		}
		merged["environment"] = c.cfg.Environment
		metadata = merged
	}

	c.enqueue(eventTraceCreate, traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	})
	return traceID, nil
}

func (c *client) CreateScore(_ context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return fmt.Errorf("score %q: trace id is required", in.Name)
	}

	c.enqueue(eventScoreCreate, scoreBody{
		ID:       uuid.New().String(),
		TraceID:  in.TraceID,
		Name:     in.Name,
		Value:    in.Value,
		DataType: scoreTypeNumeric,
		Comment:  in.Comment,
	})
	return nil
}

func (c *client) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enqueue sends one event off the request path. Failures are logged only.
func (c *client) enqueue(eventType string, body any) {
	event := ingestionEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			c.log.Warn("langfuse send failed", "event_type", eventType, "error", err)
		}
	}()
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+ingestionPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID       string  `json:"id"`
	TraceID  string  `json:"traceId"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	DataType string  `json:"dataType"`
	Comment  string  `json:"comment,omitempty"`
}
