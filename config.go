package scrapedeck

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the environment-derived client settings. Values are
// taken from environment variables with the prefix "SCRAPEDECK_".
// Example: SCRAPEDECK_API_KEY=t... SCRAPEDECK_HTTP_TIMEOUT=10s .
type Config struct {
	APIKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// LoadConfig populates Config from environment variables (prefix SCRAPEDECK_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("SCRAPEDECK", &c)
}

// NewFromEnv constructs a Client from environment variables. Explicit
// opts are applied after the environment-derived ones and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	envOpts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(cfg.BaseURL))
	}
	return New(cfg.APIKey, append(envOpts, opts...)...)
}
