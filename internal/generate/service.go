package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

const maxLoggedOutput = 2000

// Service turns a raw form record into structured portfolio content via one
// synchronous LLM round trip. It holds no state between requests.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Generate builds the prompt, invokes the model once, and normalizes the
// response. Failures map onto ErrInputTooLarge, ErrRateLimited, or
// ErrMalformedOutput; anything else is a generic provider failure.
func (s *Service) Generate(ctx context.Context, input InputProfile) (GeneratedPortfolio, error) {
	metrics.IncGenerationStarted()
	start := time.Now()

	prompt := BuildPrompt(input)
	raw, err := s.LLM.Complete(ctx, SystemInstruction, prompt)
	if err != nil {
		metrics.IncGenerationFailed()
		return GeneratedPortfolio{}, classifyProviderError(err)
	}

	portfolio, err := Normalize(raw)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("generate.malformed_output", map[string]any{
			"error": err.Error(),
			"raw":   truncate(raw, maxLoggedOutput),
		})
		return GeneratedPortfolio{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return portfolio, nil
}

// classifyProviderError maps a provider failure onto the error taxonomy.
// The checks are mutually exclusive and applied in order: context-length
// signals win over 429, and everything else collapses to a generic failure.
func classifyProviderError(err error) error {
	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		switch {
		case isContextLength(provErr):
			return fmt.Errorf("%w: %v", ErrInputTooLarge, err)
		case provErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}
	return fmt.Errorf("generation failed: %w", err)
}

func isContextLength(provErr *llm.ProviderError) bool {
	return strings.Contains(provErr.Code, "context_length_exceeded") ||
		strings.Contains(provErr.Message, "context_length_exceeded")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
