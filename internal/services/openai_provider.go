package services

import (
	"context"
	"fmt"
	"os"

	"blurbgen/internal/models"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// DefaultOpenAIModel is a small completion model; OpenAI-compatible servers
// (vLLM, llama.cpp) can serve distilgpt2 under the same API.
const DefaultOpenAIModel = "babbage-002"

type completionClient interface {
	CreateCompletion(ctx context.Context, req openai.CompletionRequest) (openai.CompletionResponse, error)
}

// OpenAIProvider implements TextModel using the completions endpoint.
// Echo is requested so the returned text starts with the prompt.
type OpenAIProvider struct {
	client completionClient
	model  string
}

// NewOpenAIProvider creates a completion model. baseURL may point at any
// OpenAI-compatible server; the API key is then optional.
func NewOpenAIProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY") // Fallback to env var
	}
	if apiKey == "" && baseURL == "" {
		return nil, fmt.Errorf("OpenAI API key not provided: %w", models.ErrModelUnavailable)
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	log.Infof("OpenAI provider initialized with model %s (base URL %s)", model, cfg.BaseURL)

	return newOpenAIProviderWithClient(openai.NewClientWithConfig(cfg), model), nil
}

func newOpenAIProviderWithClient(client completionClient, model string) *OpenAIProvider {
	return &OpenAIProvider{client: client, model: model}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (p *OpenAIProvider) ModelName() string { return p.model }

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	resp, err := p.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       p.model,
		Prompt:      prompt,
		MaxTokens:   params.MaxTokens,
		Temperature: float32(params.Temperature),
		N:           params.Candidates,
		Echo:        true,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", models.ErrEmptyCompletion
	}
	return resp.Choices[0].Text, nil
}

var _ TextModel = (*OpenAIProvider)(nil)
