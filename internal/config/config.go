// Package config loads and finalizes the service configuration: a base TOML
// file, an optional environment overlay, then defaults, environment variable
// overrides, and validation per section.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/linnaea/pathclass/internal/classifier"
	"github.com/linnaea/pathclass/internal/reasoner"
	"github.com/linnaea/pathclass/pkg/cache"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvPathclassEnv             = "PATHCLASS_ENV"
	EnvPathclassShutdownTimeout = "PATHCLASS_SHUTDOWN_TIMEOUT"
	EnvPathclassVersion         = "PATHCLASS_VERSION"
)

var cacheEnv = &cache.Env{
	Addr:      "PATHCLASS_CACHE_ADDR",
	Password:  "PATHCLASS_CACHE_PASSWORD",
	DB:        "PATHCLASS_CACHE_DB",
	Namespace: "PATHCLASS_CACHE_NAMESPACE",
	TTL:       "PATHCLASS_CACHE_TTL",
	FastSize:  "PATHCLASS_CACHE_FAST_SIZE",
}

var reasonerEnv = &reasoner.Env{
	Model:       "PATHCLASS_REASONER_MODEL",
	APIKey:      "GEMINI_API_KEY",
	MaxAttempts: "PATHCLASS_REASONER_MAX_ATTEMPTS",
	BackoffUnit: "PATHCLASS_REASONER_BACKOFF_UNIT",
	CallTimeout: "PATHCLASS_REASONER_CALL_TIMEOUT",
}

var pipelineEnv = &classifier.Env{
	BatchSize:     "PATHCLASS_PIPELINE_BATCH_SIZE",
	Concurrency:   "PATHCLASS_PIPELINE_CONCURRENCY",
	TrustedSource: "PATHCLASS_PIPELINE_TRUSTED_SOURCE",
}

// Config is the root configuration for the pathway classification service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Cache           cache.Config      `toml:"cache"`
	Reasoner        reasoner.Config   `toml:"reasoner"`
	Pipeline        classifier.Config `toml:"pipeline"`
	API             APIConfig         `toml:"api"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the PATHCLASS_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvPathclassEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Cache.Merge(&overlay.Cache)
	c.Reasoner.Merge(&overlay.Reasoner)
	c.Pipeline.Merge(&overlay.Pipeline)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Cache.Finalize(cacheEnv); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Reasoner.Finalize(reasonerEnv); err != nil {
		return fmt.Errorf("reasoner: %w", err)
	}
	if err := c.Pipeline.Finalize(pipelineEnv); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvPathclassShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvPathclassVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvPathclassEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
