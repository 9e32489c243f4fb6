package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// Letter generation provider: "perplexity" (default) or "openai".
	Provider          string        `env:"LETTER_PROVIDER" envDefault:"perplexity"`
	PerplexityAPIKey  string        `env:"PERPLEXITY_API_KEY"`
	PerplexityBaseURL string        `env:"PERPLEXITY_BASE_URL" envDefault:"https://api.perplexity.ai"`
	PerplexityModel   string        `env:"PERPLEXITY_MODEL" envDefault:"sonar"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`

	// Prompt spec file; compiled-in defaults are used when it is absent.
	PromptFile string `env:"PROMPT_FILE" envDefault:"prompts/letter.yaml"`

	// Client-side settings.
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	ThemeFile string `env:"THEME_FILE"`
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.PerplexityAPIKey == "" && cfg.OpenAIAPIKey == "" {
		slog.Warn("no completion API key is set; letter generation will fail until one is provided")
	}
	return cfg, nil
}
