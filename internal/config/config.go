package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Generation providers.
const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

type Config struct {
	Debug bool `mapstructure:"-"` // Resolved by ParseDebug, not by viper's bool casting

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Generation struct {
		Provider    string  `mapstructure:"provider"` // "mock", "openai", "gemini" or "ollama"
		Model       string  `mapstructure:"model"`
		MaxTokens   int     `mapstructure:"max_tokens"`
		Temperature float64 `mapstructure:"temperature"`
		Candidates  int     `mapstructure:"candidates"`
		EagerInit   bool    `mapstructure:"eager_init"` // Load the model at startup instead of first request
	} `mapstructure:"generation"`

	OpenAI struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"` // Any OpenAI-compatible completions server
	} `mapstructure:"openai"`

	Gemini struct {
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"gemini"`

	Ollama struct {
		ServerURL string `mapstructure:"server_url"`
	} `mapstructure:"ollama"`
}

// ListenAddr returns host:port for the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Addr, c.Server.Port)
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", "false")
	v.SetDefault("server.addr", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("generation.provider", ProviderMock)
	v.SetDefault("generation.model", "")
	v.SetDefault("generation.max_tokens", 50)
	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.candidates", 1)
	v.SetDefault("generation.eager_init", false)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("ollama.server_url", "")
}

// LoadConfig reads an optional .env file, an optional config.yaml in the
// working directory, and BLURBGEN_* environment variables, in rising precedence.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BLURBGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys also come from their conventional variable names.
	v.BindEnv("openai.api_key", "BLURBGEN_OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("gemini.api_key", "BLURBGEN_GEMINI_API_KEY", "GEMINI_API_KEY")
	v.BindEnv("debug", "BLURBGEN_DEBUG", "FLASK_DEBUG")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals a populated viper instance into a Config.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.Debug = ParseDebug(v.GetString("debug"))
	cfg.Generation.Provider = strings.ToLower(strings.TrimSpace(cfg.Generation.Provider))
	return &cfg, nil
}

// ParseDebug reports whether value turns debug mode on. Only "true", "1" and
// "t" count, in any case; everything else, including empty, is off.
func ParseDebug(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "t":
		return true
	default:
		return false
	}
}
