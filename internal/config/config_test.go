package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blurbgen/internal/models"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.False(t, cfg.Debug, "debug must default to off")
	assert.Equal(t, "0.0.0.0:5000", cfg.ListenAddr())
	assert.Equal(t, ProviderMock, cfg.Generation.Provider)
	assert.Equal(t, 50, cfg.Generation.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, 1, cfg.Generation.Candidates)
	assert.False(t, cfg.Generation.EagerInit)
	assert.NoError(t, cfg.Validate())
}

func TestParseDebug(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "True", "1", "t", "T", " tRuE "} {
		assert.True(t, ParseDebug(v), v)
	}
	for _, v := range []string{"", "false", "0", "f", "yes", "on", "2"} {
		assert.False(t, ParseDebug(v), v)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BLURBGEN_DEBUG", "1")
	t.Setenv("BLURBGEN_SERVER_PORT", "8080")
	t.Setenv("BLURBGEN_GENERATION_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Generation.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "unknown provider", mutate: func(c *Config) { c.Generation.Provider = "gpt2" }, wantErr: "unknown generation provider"},
		{name: "zero max tokens", mutate: func(c *Config) { c.Generation.MaxTokens = 0 }, wantErr: "max_tokens"},
		{name: "temperature too high", mutate: func(c *Config) { c.Generation.Temperature = 3 }, wantErr: "temperature"},
		{name: "several candidates", mutate: func(c *Config) { c.Generation.Candidates = 3 }, wantErr: "candidates"},
		{name: "openai without key", mutate: func(c *Config) { c.Generation.Provider = ProviderOpenAI }, wantErr: "openai.api_key"},
		{name: "gemini without key", mutate: func(c *Config) { c.Generation.Provider = ProviderGemini }, wantErr: "gemini.api_key"},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	cfg := defaultConfig(t)
	cfg.Generation.Provider = "nope"
	assert.ErrorIs(t, cfg.Validate(), models.ErrUnknownProvider)

	cfg = defaultConfig(t)
	cfg.Generation.Provider = ProviderOpenAI
	cfg.OpenAI.BaseURL = "http://localhost:8000/v1"
	assert.NoError(t, cfg.Validate())

	cfg = defaultConfig(t)
	cfg.Generation.Provider = ProviderOllama
	assert.NoError(t, cfg.Validate())
}
