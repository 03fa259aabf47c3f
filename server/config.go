package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config describes the HTTP server configuration
type Config struct {
	Addr             string   `env:"KINLOOM_ADDR" envDefault:":8080"`
	AllowedOrigins   []string `env:"KINLOOM_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MaxDocumentBytes int64    `env:"KINLOOM_MAX_DOCUMENT_BYTES" envDefault:"1048576"`
}

// ParseConfig loads configuration from environment variables
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
