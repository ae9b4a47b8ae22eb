package ai

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the generative-AI client settings. The API key is an
// opaque credential: it is carried, never inspected or validated
// locally.
type Config struct {
	APIKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL" default:"gemini-2.5-flash"`
	BaseURL string `envconfig:"BASE_URL" default:"https://generativelanguage.googleapis.com"`
}

// LoadConfig reads GEMINI_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("gemini", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("ai: GEMINI_API_KEY is required")
	}
	return cfg, nil
}
