package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment driven configuration for the slidesmith
// service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"slidesmith"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8290"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Asset sources. "builtin" is always deterministic and needs no
	// network; "openverse" and "iconify" are remote providers.
	AssetSources       []string      `env:"ASSET_SOURCES" envDefault:"builtin" envSeparator:","`
	AssetSourceTimeout time.Duration `env:"ASSET_SOURCE_TIMEOUT" envDefault:"5s"`

	// Brand book. Optional YAML catalog of named brand guidelines.
	BrandBookPath string `env:"BRAND_BOOK_PATH" envDefault:""`

	// Hard cap on accepted content size, in bytes.
	MaxContentBytes int `env:"MAX_CONTENT_BYTES" envDefault:"262144"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.AssetSourceTimeout <= 0 {
		cfg.AssetSourceTimeout = 5 * time.Second
	}
	if cfg.MaxContentBytes <= 0 {
		cfg.MaxContentBytes = 256 * 1024
	}

	sources := make([]string, 0, len(cfg.AssetSources))
	for _, src := range cfg.AssetSources {
		if trimmed := strings.ToLower(strings.TrimSpace(src)); trimmed != "" {
			sources = append(sources, trimmed)
		}
	}
	if len(sources) == 0 {
		sources = []string{"builtin"}
	}
	cfg.AssetSources = sources

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
