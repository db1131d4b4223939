// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `env:"ADDR" envDefault:":8080"`
	// Environment is "development" or "production".
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `env:"DATABASE_URL,required"`
	// DashboardURL is where browser auth flows redirect after login.
	DashboardURL string `env:"DASHBOARD_URL" envDefault:"http://localhost:3000"`
	// SnowflakeNodeID distinguishes ID-generating instances (0-1023).
	SnowflakeNodeID int64 `env:"SNOWFLAKE_NODE_ID" envDefault:"1"`
	// OTLPEndpoint enables OTLP export of traces and logs when set.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	WorkOS WorkOSConfig `envPrefix:"WORKOS_"`
}

type WorkOSConfig struct {
	APIKey      string `env:"API_KEY,required"`
	ClientID    string `env:"CLIENT_ID,required"`
	RedirectURI string `env:"REDIRECT_URI,required"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads .env if present (missing file is fine, e.g. in CI), then parses
// the environment into Config. Env vars override .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
