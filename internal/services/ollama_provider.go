package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const DefaultOllamaModel = "tinyllama"

// OllamaProvider implements TextModel against a locally hosted model through langchaingo.
type OllamaProvider struct {
	llm   llms.Model
	model string
}

// NewOllamaProvider connects to serverURL (empty means the ollama default).
func NewOllamaProvider(serverURL, model string) (*OllamaProvider, error) {
	if model == "" {
		model = DefaultOllamaModel
	}

	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create ollama client: %w", err)
	}
	log.Infof("Ollama provider initialized with model %s", model)

	return &OllamaProvider{llm: llm, model: model}, nil
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string { return "ollama" }

// ModelName returns the specific model identifier.
func (p *OllamaProvider) ModelName() string { return p.model }

func (p *OllamaProvider) Complete(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt,
		llms.WithMaxTokens(params.MaxTokens),
		llms.WithTemperature(params.Temperature),
		llms.WithN(params.Candidates),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generation: %w", err)
	}
	return text, nil
}

var _ TextModel = (*OllamaProvider)(nil)
