package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/logger"
)

var errPromptsDisabled = errors.New("langfuse prompt management disabled")

// PromptLoader resolves a managed prompt. Sources are tried in order: the
// Langfuse prompt API, the local cache file, then Fallback.
type PromptLoader struct {
	Config
	Name      string
	Label     string
	CachePath string
	Fallback  string

	HTTPClient *http.Client
	Log        *logger.Logger
}

// Load never fails when Fallback is set.
func (l *PromptLoader) Load(ctx context.Context) (string, error) {
	log := l.Log
	if log == nil {
		log = logger.Nop()
	}

	prompt, err := l.fetch(ctx)
	if err == nil {
		if err := l.writeCache(prompt); err != nil {
			log.Warn("failed to cache prompt locally", "path", l.CachePath, "error", err)
		}
		return prompt, nil
	}
	if !errors.Is(err, errPromptsDisabled) {
		log.Warn("langfuse prompt fetch failed", "prompt", l.Name, "error", err)
	}

	if cached, cacheErr := l.readCache(); cacheErr == nil {
		return cached, nil
	}
	if l.Fallback != "" {
		return l.Fallback, nil
	}
	return "", fmt.Errorf("prompt %q unavailable: %w", l.Name, err)
}

func (l *PromptLoader) fetch(ctx context.Context) (string, error) {
	if l.Name == "" || l.BaseURL == "" || l.PublicKey == "" || l.SecretKey == "" {
		return "", errPromptsDisabled
	}

	endpoint, err := url.Parse(strings.TrimSuffix(l.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(l.Name)
	if l.Label != "" {
		endpoint.RawQuery = url.Values{"label": {l.Label}}.Encode()
	}

	reqCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(l.PublicKey, l.SecretKey)

	httpClient := l.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}
	return decodePrompt(payload.Type, payload.Prompt)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// decodePrompt flattens chat prompts into one system prompt, keeping only
// system and developer messages.
func decodePrompt(kind string, raw json.RawMessage) (string, error) {
	switch kind {
	case "", "text":
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(raw, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		var parts []string
		for _, m := range messages {
			if (m.Role == "system" || m.Role == "developer") && m.Content != "" {
				parts = append(parts, m.Content)
			}
		}
		if len(parts) == 0 {
			return "", fmt.Errorf("chat prompt has no system message")
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", kind)
	}
}

func (l *PromptLoader) readCache() (string, error) {
	if l.CachePath == "" {
		return "", fmt.Errorf("no prompt cache configured")
	}
	data, err := os.ReadFile(l.CachePath)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("prompt cache is empty")
	}
	return string(data), nil
}

func (l *PromptLoader) writeCache(prompt string) error {
	if l.CachePath == "" {
		return nil
	}
	if dir := filepath.Dir(l.CachePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(l.CachePath, []byte(prompt), 0o600)
}
