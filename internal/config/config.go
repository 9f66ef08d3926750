// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string `envconfig:"APP_HOST" default:"0.0.0.0"`
	Port      string `envconfig:"APP_PORT" default:"8080"`
	Env       string `envconfig:"APP_ENV" default:"development"` // "development", "production", "testing"
	PublicURL string `envconfig:"APP_PUBLIC_URL"`                // prefix for detail URLs in events

	// PostgreSQL connection
	DBHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	DBPort     string `envconfig:"POSTGRES_PORT" default:"5432"`
	DBUser     string `envconfig:"POSTGRES_USER" default:"catalog"`
	DBPassword string `envconfig:"POSTGRES_PASSWORD" default:"changeme"`
	DBName     string `envconfig:"POSTGRES_DB" default:"catalog"`

	// Valkey (Redis-compatible) for the event stream and rate limiting.
	// An empty host disables both.
	ValkeyHost     string `envconfig:"VALKEY_HOST" default:"localhost"`
	ValkeyPort     string `envconfig:"VALKEY_PORT" default:"6379"`
	ValkeyPassword string `envconfig:"VALKEY_PASSWORD"`

	// Integration events
	EventStream    string        `envconfig:"EVENT_STREAM" default:"catalog.events"`
	EventTimeout   time.Duration `envconfig:"EVENT_TIMEOUT" default:"5s"`
	RateLimit      int           `envconfig:"RATE_LIMIT" default:"120"` // mutations per client per window
	RateLimitEvery time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// S3-compatible media storage (optional)
	S3Endpoint     string `envconfig:"S3_ENDPOINT"`
	S3Region       string `envconfig:"S3_REGION" default:"fsn1"`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY"`
	S3BucketPublic string `envconfig:"S3_BUCKET_PUBLIC" default:"catalog-media"`
	S3PublicURL    string `envconfig:"S3_PUBLIC_URL"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateLimitEvery <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitEvery)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" || cfg.DBPassword == "" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return &cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already present in the environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ValkeyEnabled reports whether a Valkey host is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// StorageEnabled reports whether S3 media storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
