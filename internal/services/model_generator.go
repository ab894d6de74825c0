package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"blurbgen/internal/models"
	"blurbgen/internal/transformer/blurb"

	log "github.com/sirupsen/logrus"
)

// ModelGenerator generates descriptions with a TextModel that is constructed on
// first use and shared for the life of the process.
type ModelGenerator struct {
	name    string
	factory ModelFactory
	params  GenerationParams

	mu    sync.Mutex
	model TextModel
}

// NewModelGenerator returns a generator backed by the model that factory builds.
func NewModelGenerator(name string, factory ModelFactory, params GenerationParams) *ModelGenerator {
	return &ModelGenerator{
		name:    name,
		factory: factory,
		params:  params,
	}
}

func (g *ModelGenerator) Name() string { return g.name }

// Params returns the generation parameters sent with every prompt.
func (g *ModelGenerator) Params() GenerationParams { return g.params }

// Warmup constructs the model eagerly so the first request does not pay for it.
func (g *ModelGenerator) Warmup(ctx context.Context) error {
	_, err := g.handle(ctx)
	return err
}

// handle returns the shared model, building it under the lock if needed.
// A failed build is not cached; the next call tries again.
func (g *ModelGenerator) handle(ctx context.Context) (TextModel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.model != nil {
		return g.model, nil
	}

	m, err := g.factory(ctx)
	if err != nil {
		return nil, models.NewGenerationError(g.name, fmt.Errorf("failed to load %s model: %w", g.name, err))
	}
	log.Infof("Loaded %s text model %s", m.Name(), m.ModelName())
	g.model = m
	return m, nil
}

func (g *ModelGenerator) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	m, err := g.handle(ctx)
	if err != nil {
		return "", err
	}

	prompt := blurb.BuildPrompt(req.ProductName, req.Category)
	raw, err := m.Complete(ctx, prompt, g.params)
	if err != nil {
		return "", models.NewGenerationError(g.name, err)
	}
	log.Debugf("Raw %s completion: %q", g.name, raw)

	return blurb.ExtractDescription(prompt, raw), nil
}

// Close releases the model if it holds resources.
func (g *ModelGenerator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.model.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ Generator = (*ModelGenerator)(nil)
