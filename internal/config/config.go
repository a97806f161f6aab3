package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is assembled once at startup and passed down through fx.
// Nothing else in the tree reads the environment directly.
type Config struct {
	Port           string `envconfig:"PORT" default:"8000"`
	DatabaseURL    string `envconfig:"DATABASE_URL" default:"reviews.db"`
	AIProvider     string `envconfig:"AI_PROVIDER" default:"gemini"`
	GeminiAPIKey   string `envconfig:"GEMINI_API_KEY"`
	GeminiModel    string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel    string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if strings.EqualFold(c.AIProvider, "openai") {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// GenerationEnabled reports whether a key is configured for the active
// provider. A missing key puts every generation call in fallback mode.
func (c *Config) GenerationEnabled() bool {
	return c.APIKey() != ""
}

// Origins splits the configured CORS origin list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
