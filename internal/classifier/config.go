package classifier

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds pipeline tuning parameters: batch sizing, the concurrency cap
// against the reasoning service, and the trusted source identifier.
type Config struct {
	BatchSize     int    `toml:"batch_size"`
	Concurrency   int    `toml:"concurrency"`
	TrustedSource string `toml:"trusted_source"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	BatchSize     string
	Concurrency   string
	TrustedSource string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BatchSize != 0 {
		c.BatchSize = overlay.BatchSize
	}
	if overlay.Concurrency != 0 {
		c.Concurrency = overlay.Concurrency
	}
	if overlay.TrustedSource != "" {
		c.TrustedSource = overlay.TrustedSource
	}
}

func (c *Config) loadDefaults() {
	if c.BatchSize == 0 {
		c.BatchSize = 50
	}
	if c.Concurrency == 0 {
		c.Concurrency = 5
	}
	if c.TrustedSource == "" {
		c.TrustedSource = "Reactome"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BatchSize != "" {
		if v := os.Getenv(env.BatchSize); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.BatchSize = n
			}
		}
	}
	if env.Concurrency != "" {
		if v := os.Getenv(env.Concurrency); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.Concurrency = n
			}
		}
	}
	if env.TrustedSource != "" {
		if v := os.Getenv(env.TrustedSource); v != "" {
			c.TrustedSource = v
		}
	}
}

func (c *Config) validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("invalid batch_size: %d", c.BatchSize)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency: %d", c.Concurrency)
	}
	return nil
}
