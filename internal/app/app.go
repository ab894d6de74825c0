package app

import (
	"context"
	"fmt"
	"io"

	"blurbgen/internal/config"
	"blurbgen/internal/models"
	"blurbgen/internal/services"

	log "github.com/sirupsen/logrus" // Use logrus
)

type App struct {
	Config    *config.Config
	Generator services.Generator

	// Sanitize HTML-escapes inputs before they reach the backend. It is on for
	// model backends, whose prompts and echoed fields may be rendered as markup.
	Sanitize bool
}

// NewApp builds the configured generation backend.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initGenerator(); err != nil {
		return nil, err
	}
	if err := app.warmup(ctx); err != nil {
		app.Close()
		return nil, err
	}

	log.Infof("Application initialization complete (backend: %s, sanitize: %v).", app.Generator.Name(), app.Sanitize)
	return app, nil
}

// New wraps an existing generator, for tests and embedding.
func New(cfg *config.Config, gen services.Generator, sanitize bool) *App {
	return &App{Config: cfg, Generator: gen, Sanitize: sanitize}
}

// --- Private Helper Methods ---

func (a *App) initGenerator() error {
	cfg := a.Config
	if cfg.Generation.Provider == config.ProviderMock {
		a.Generator = services.NewMockGenerator()
		a.Sanitize = false
		return nil
	}

	factory, err := modelFactory(cfg)
	if err != nil {
		return err
	}
	params := services.GenerationParams{
		MaxTokens:   cfg.Generation.MaxTokens,
		Temperature: cfg.Generation.Temperature,
		Candidates:  cfg.Generation.Candidates,
	}
	a.Generator = services.NewModelGenerator(cfg.Generation.Provider, factory, params)
	a.Sanitize = true
	return nil
}

// modelFactory defers client construction until the model is first needed.
func modelFactory(cfg *config.Config) (services.ModelFactory, error) {
	switch cfg.Generation.Provider {
	case config.ProviderOpenAI:
		return func(context.Context) (services.TextModel, error) {
			return services.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Generation.Model)
		}, nil
	case config.ProviderGemini:
		return func(ctx context.Context) (services.TextModel, error) {
			return services.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Generation.Model)
		}, nil
	case config.ProviderOllama:
		return func(context.Context) (services.TextModel, error) {
			return services.NewOllamaProvider(cfg.Ollama.ServerURL, cfg.Generation.Model)
		}, nil
	default:
		return nil, fmt.Errorf("generation provider %q: %w", cfg.Generation.Provider, models.ErrUnknownProvider)
	}
}

func (a *App) warmup(ctx context.Context) error {
	if !a.Config.Generation.EagerInit {
		return nil
	}
	w, ok := a.Generator.(interface{ Warmup(context.Context) error })
	if !ok {
		return nil
	}
	log.Infof("Loading %s model at startup", a.Generator.Name())
	if err := w.Warmup(ctx); err != nil {
		return fmt.Errorf("init %s model: %w", a.Generator.Name(), err)
	}
	return nil
}

// Close releases backend resources.
func (a *App) Close() {
	if c, ok := a.Generator.(io.Closer); ok && c != nil {
		if err := c.Close(); err != nil {
			log.Printf("Error closing generator: %v", err)
		}
	}
}
