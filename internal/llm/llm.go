package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts chat-completion providers for portfolio generation.
// Complete performs one synchronous round trip and returns the raw model text.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ProviderError carries the provider-reported status and message for a failed call.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("llm provider error: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("llm provider error: %s (status %d)", e.Message, e.StatusCode)
}

// ErrNotConfigured is returned by the placeholder client so misconfiguration
// surfaces as a clear error on first use instead of a silent no-op.
var ErrNotConfigured = errors.New("llm provider not configured: set LLM_PROVIDER and GROQ_API_KEY")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	_ = ctx
	_ = system
	_ = prompt
	return "", ErrNotConfigured
}
