// Package config reads application configuration from environment variables.
// A .env file, when present, is folded into the environment by the main
// package before Load runs.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/branxiety/gameplan-ai/internal/llm"
)

// ErrMissingAPIKey is returned when no credential is configured. The text is
// shown to the user as-is, so it names the fix.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not found. Please set it as an environment variable or in a .env file.")

// Config holds every tunable of the application. Generation temperature and
// token budget are not here; those are fixed in the planner.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	Model      string `env:"GAMEPLAN_MODEL" envDefault:"gpt-4o-mini"`
	Endpoint   string `env:"GAMEPLAN_ENDPOINT" envDefault:"https://api.openai.com"`
	TimeoutMs  int    `env:"GAMEPLAN_TIMEOUT_MS" envDefault:"30000"`
	MaxRetries int    `env:"GAMEPLAN_MAX_RETRIES" envDefault:"1"`
	LogCalls   bool   `env:"GAMEPLAN_LOG_CALLS" envDefault:"false"`
	Addr       string `env:"GAMEPLAN_ADDR" envDefault:":8080"`
}

// Load parses the environment and checks the credential is present. It is
// called before any shell starts, so a missing key fails fast.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.TimeoutMs <= 0 {
		return nil, fmt.Errorf("GAMEPLAN_TIMEOUT_MS must be positive, got %d", cfg.TimeoutMs)
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("GAMEPLAN_MAX_RETRIES cannot be negative, got %d", cfg.MaxRetries)
	}
	return cfg, nil
}

// LLM maps the app config onto the completion client's config.
func (c *Config) LLM() llm.Config {
	lc := llm.DefaultConfig()
	lc.Endpoint = c.Endpoint
	lc.Model = c.Model
	lc.APIKey = c.APIKey
	lc.TimeoutMs = c.TimeoutMs
	lc.MaxRetries = c.MaxRetries
	return lc
}
