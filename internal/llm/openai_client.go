package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no managed prompt is configured.
const DefaultSystemPrompt = `You are a non-clinical wellbeing assistant.

You receive the results of a deterministic analytics engine for a single user: an engagement summary with mood statistics, the latest score snapshot (six 0-100 indices plus a composite), detected mood patterns and ranked insights. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's recent mood and engagement in clear, warm, neutral language.
- Explain what the scores and patterns suggest, naming the strongest and weakest areas.
- Mention any index listed in "inputs.defaulted" as not yet measured rather than interpreting it.
- Give practical, behavioral suggestions that build on the insights' recommendations.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention disorders, medication, or treatment.
- Focus on routines: logging, activities, social contact, rest.
- If data is limited, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's recent wellbeing.",
  "observations": ["3-6 items about scores, patterns and engagement."],
  "guidance": ["3-5 concrete, non-clinical suggestions tailored to these numbers."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's wellbeing analytics.

- "summary" holds weekly and monthly mood averages, the mood trend, streaks and mood statistics.
- "snapshot" holds the latest scores; burnout_risk_score and cognitive_fatigue_score are better when low.
- "patterns" holds detected weekly cycles and mood trends with confidence scores.
- "insights" holds rule-based findings ranked by severity.

JSON:

%s

Based on this data, respond in the required JSON format.`

// NarrativeLLM generates a natural-language narrative over computed analytics.
type NarrativeLLM interface {
	GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error)
}

// OpenAIClient implements NarrativeLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: DefaultSystemPrompt,
	}
}

// WithSystemPrompt replaces the system prompt. An empty prompt is ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && prompt != "" {
		c.systemPrompt = prompt
	}
	return c
}

// GenerateNarrative calls OpenAI to describe the analytics results.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(narrativeCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseNarrative(resp.Choices[0].Message.Content)
}

func parseNarrative(content string) (*domain.NarrativeOutput, error) {
	var output domain.NarrativeOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
