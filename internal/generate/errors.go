package generate

import "errors"

var (
	// ErrMalformedOutput means the model text held no parseable JSON object
	// even after normalization.
	ErrMalformedOutput = errors.New("model output is not a JSON object")
	// ErrInputTooLarge means the provider rejected the prompt for exceeding
	// its context window.
	ErrInputTooLarge = errors.New("input exceeds model context window")
	// ErrRateLimited means the provider throttled the request.
	ErrRateLimited = errors.New("provider rate limit exceeded")
)

// User-facing messages for the generation endpoint. Raw model text and raw
// provider errors are logged, never returned.
const (
	MsgGenerationFailed = "AI generation failed"
	MsgInputTooLarge    = "Input too long. Please reduce the amount of text."
	MsgRateLimited      = "Rate limit exceeded. Please try again in a moment."
)
