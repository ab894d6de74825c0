package services

import (
	"context"

	"blurbgen/internal/models"
)

// Generator produces a marketing description for an already validated request.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (string, error)
	Name() string // Backend name (e.g., "mock", "openai")
}

// GenerationParams are fixed per process and never taken from a request.
type GenerationParams struct {
	MaxTokens   int
	Temperature float64
	Candidates  int
}

// DefaultGenerationParams mirrors the limits the service has always used:
// 50 tokens, temperature 0.7, one candidate.
var DefaultGenerationParams = GenerationParams{
	MaxTokens:   50,
	Temperature: 0.7,
	Candidates:  1,
}

// TextModel is a text-generation engine returning one continuation per prompt.
// Implementations may echo the prompt at the start of the returned text.
type TextModel interface {
	Complete(ctx context.Context, prompt string, params GenerationParams) (string, error)
	Name() string      // Provider name (e.g., "openai", "gemini")
	ModelName() string // Specific model used
}

// ModelFactory builds a TextModel. It is called once per process on success.
type ModelFactory func(ctx context.Context) (TextModel, error)
