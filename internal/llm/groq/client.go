package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/shared/telemetry"
)

// Groq exposes an OpenAI-compatible chat-completions API.
const defaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"

const (
	defaultTimeout = 30 * time.Second
	temperature    = float32(0.1)
	maxTokens      = 2000
)

// Client implements llm.Client using Groq Chat Completions.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *resty.Client
}

// NewClient constructs a new Groq client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Groq")
	}

	timeout := defaultTimeout
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	apiURL := defaultAPIURL
	if raw := strings.TrimSpace(os.Getenv("GROQ_BASE_URL")); raw != "" {
		apiURL = strings.TrimRight(raw, "/") + "/chat/completions"
	}

	return &Client{
		apiKey:     apiKey,
		model:      model,
		apiURL:     apiURL,
		httpClient: resty.New().SetTimeout(timeout),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Complete sends one chat-completion request and returns the raw model text.
// There is no retry; callers get exactly one attempt per user request.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	temp := temperature
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: &temp,
		MaxTokens:   maxTokens,
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(c.apiURL)
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		if resp.IsError() {
			return "", &llm.ProviderError{StatusCode: resp.StatusCode(), Message: strings.TrimSpace(string(resp.Body()))}
		}
		return "", fmt.Errorf("groq response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", &llm.ProviderError{
			StatusCode: resp.StatusCode(),
			Code:       parsed.Error.Code,
			Message:    fmt.Sprintf("%s (%s)", parsed.Error.Message, parsed.Error.Type),
		}
	}
	if resp.IsError() {
		return "", &llm.ProviderError{StatusCode: resp.StatusCode(), Message: resp.Status()}
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("groq response empty content")
	}

	logUsage(c.model, &parsed)
	return content, nil
}

func logUsage(model string, parsed *chatResponse) {
	fields := map[string]any{"model": model}
	if parsed.Usage != nil {
		fields["prompt_tokens"] = parsed.Usage.PromptTokens
		fields["completion_tokens"] = parsed.Usage.CompletionTokens
		fields["total_tokens"] = parsed.Usage.TotalTokens
	}
	telemetry.Info("llm.response", fields)
}

var _ llm.Client = (*Client)(nil)
