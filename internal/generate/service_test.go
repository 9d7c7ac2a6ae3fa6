package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio-backend/internal/llm"
)

type fakeLLM struct {
	output string
	err    error
	system string
	prompt string
}

func (f *fakeLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.system = system
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func sampleInput() InputProfile {
	return InputProfile{
		PersonalInfo: PersonalInfo{Name: "Jane Doe", Email: "jane@x.com", Phone: "555"},
		Professional: Professional{Skills: "Go, SQL", Domain: "software_developer"},
		Projects:     Projects{Project1: "Tool X - a CLI built in Go"},
	}
}

func TestGenerateSuccess(t *testing.T) {
	client := &fakeLLM{output: "```json\n" +
		`{"summary":"Go developer.","skills":["Go","SQL"],"experience":[],` +
		`"projects":[{"name":"Tool X","tech":["Go"],"description":"A CLI built in Go"}]}` +
		"\n```"}
	svc := NewService(client)

	portfolio, err := svc.Generate(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if client.system != SystemInstruction {
		t.Fatalf("unexpected system message: %q", client.system)
	}
	if !strings.Contains(client.prompt, "Jane Doe") {
		t.Fatalf("prompt missing input echo")
	}

	found := map[string]bool{}
	for _, skill := range portfolio.Skills {
		found[skill] = true
	}
	if !found["Go"] || !found["SQL"] {
		t.Fatalf("expected Go and SQL in skills, got %v", portfolio.Skills)
	}
	if len(portfolio.Projects) < 1 {
		t.Fatalf("expected at least one project")
	}
}

func TestGenerateMalformedOutput(t *testing.T) {
	svc := NewService(&fakeLLM{output: "plain prose, no JSON here"})

	_, err := svc.Generate(context.Background(), sampleInput())
	if !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestGenerateClassifiesContextLength(t *testing.T) {
	provErr := &llm.ProviderError{StatusCode: 400, Code: "context_length_exceeded", Message: "too long"}
	svc := NewService(&fakeLLM{err: provErr})

	_, err := svc.Generate(context.Background(), sampleInput())
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestGenerateClassifiesRateLimit(t *testing.T) {
	provErr := &llm.ProviderError{StatusCode: 429, Message: "slow down"}
	svc := NewService(&fakeLLM{err: provErr})

	_, err := svc.Generate(context.Background(), sampleInput())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestGenerateContextLengthWinsOver429(t *testing.T) {
	provErr := &llm.ProviderError{StatusCode: 429, Code: "context_length_exceeded", Message: "too long"}
	svc := NewService(&fakeLLM{err: provErr})

	_, err := svc.Generate(context.Background(), sampleInput())
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected context-length to take precedence, got %v", err)
	}
	if errors.Is(err, ErrRateLimited) {
		t.Fatalf("classification must be mutually exclusive")
	}
}

func TestGenerateGenericProviderFailure(t *testing.T) {
	svc := NewService(&fakeLLM{err: &llm.ProviderError{StatusCode: 500, Message: "boom"}})

	_, err := svc.Generate(context.Background(), sampleInput())
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrInputTooLarge) || errors.Is(err, ErrRateLimited) || errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("expected generic failure, got %v", err)
	}
}
