package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blurbgen/internal/app"
	"blurbgen/internal/config"
	"blurbgen/internal/models"
	"blurbgen/internal/services"
)

func TestSamplesCommand(t *testing.T) {
	var out bytes.Buffer
	samplesCmd.SetOut(&out)
	samplesCmd.Run(samplesCmd, nil)

	for _, s := range services.ListSamples() {
		assert.Contains(t, out.String(), s.ProductName)
		assert.Contains(t, out.String(), s.Category)
	}
}

func TestGenerateCommand(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	generateCmd.SetOut(&out)
	generateCmd.SetContext(context.WithValue(context.Background(), appKey, a))

	require.NoError(t, generateCmd.RunE(generateCmd, []string{" FreshBrew ", "coffee maker"}))
	assert.Contains(t, out.String(), "FreshBrew")
	assert.Contains(t, out.String(), "coffee maker")

	err = generateCmd.RunE(generateCmd, []string{"", "coffee maker"})
	require.Error(t, err)
	assert.Equal(t, "Product name and category are required", err.Error())
}

func TestGetAppFromContext(t *testing.T) {
	_, err := GetAppFromContext(context.Background())
	assert.Error(t, err)

	a := app.New(nil, services.NewMockGenerator(), false)
	got, err := GetAppFromContext(context.WithValue(context.Background(), appKey, a))
	require.NoError(t, err)
	assert.Same(t, a, got)
}

type closingGenerator struct {
	closed bool
}

func (g *closingGenerator) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	return "", models.NewGenerationError("closing", errors.New("model offline"))
}

func (g *closingGenerator) Name() string { return "closing" }

func (g *closingGenerator) Close() error {
	g.closed = true
	return nil
}

func TestGenerateCommand_ClosesAppOnError(t *testing.T) {
	gen := &closingGenerator{}
	a := app.New(nil, gen, false)

	generateCmd.SetOut(&bytes.Buffer{})
	generateCmd.SetContext(context.WithValue(context.Background(), appKey, a))

	err := generateCmd.RunE(generateCmd, []string{"ZenPad", "meditation app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model offline")
	assert.True(t, gen.closed)
}
