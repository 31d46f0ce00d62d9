// ABOUTME: Configuration loader for backend service
// ABOUTME: Loads an optional .env file, then environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvFileVar names the variable that points at an alternate .env file
const EnvFileVar = "DRONECALC_ENV_FILE"

const defaultEnvFile = ".env"

type Config struct {
	// Server
	Port                string        `envconfig:"PORT" default:"8080"`
	CORSAllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS"` // empty = block all cross-origin
	MaxRequestBodyBytes int64         `envconfig:"MAX_REQUEST_BODY_BYTES" default:"65536"`
	ShutdownTimeout     time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	Version             string        `envconfig:"SERVICE_VERSION" default:"dev"`

	// Rate Limiting
	RateLimitEnabled bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RateLimitDefault int  `envconfig:"RATE_LIMIT_DEFAULT" default:"100"` // requests per minute

	// Observability
	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// Load reads the .env file named by DRONECALC_ENV_FILE (default .env) and
// then processes the environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.CORSAllowedOrigins = cleanList(cfg.CORSAllowedOrigins)

	if cfg.RateLimitDefault < 1 || cfg.RateLimitDefault > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_DEFAULT must be between 1 and 10000, got %d", cfg.RateLimitDefault)
	}
	if cfg.MaxRequestBodyBytes < 1 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_BYTES must be positive, got %d", cfg.MaxRequestBodyBytes)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadEnvFile() error {
	path := os.Getenv(EnvFileVar)
	if path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// cleanList trims whitespace and drops empty entries
func cleanList(values []string) []string {
	var result []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
