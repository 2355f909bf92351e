package reasoner

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds reasoning service connection and retry parameters.
type Config struct {
	Model       string `toml:"model"`
	APIKey      string `toml:"api_key"`
	MaxAttempts int    `toml:"max_attempts"`
	BackoffUnit string `toml:"backoff_unit"`
	CallTimeout string `toml:"call_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Model       string
	APIKey      string
	MaxAttempts string
	BackoffUnit string
	CallTimeout string
}

// BackoffUnitDuration returns BackoffUnit as a time.Duration.
func (c *Config) BackoffUnitDuration() time.Duration {
	d, _ := time.ParseDuration(c.BackoffUnit)
	return d
}

// CallTimeoutDuration returns CallTimeout as a time.Duration.
func (c *Config) CallTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.CallTimeout)
	return d
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
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.BackoffUnit != "" {
		c.BackoffUnit = overlay.BackoffUnit
	}
	if overlay.CallTimeout != "" {
		c.CallTimeout = overlay.CallTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-2.0-flash"
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.BackoffUnit == "" {
		c.BackoffUnit = "1s"
	}
	if c.CallTimeout == "" {
		c.CallTimeout = "2m"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.MaxAttempts != "" {
		if v := os.Getenv(env.MaxAttempts); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.MaxAttempts = n
			}
		}
	}
	if env.BackoffUnit != "" {
		if v := os.Getenv(env.BackoffUnit); v != "" {
			c.BackoffUnit = v
		}
	}
	if env.CallTimeout != "" {
		if v := os.Getenv(env.CallTimeout); v != "" {
			c.CallTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("invalid max_attempts: %d", c.MaxAttempts)
	}
	if _, err := time.ParseDuration(c.BackoffUnit); err != nil {
		return fmt.Errorf("invalid backoff_unit: %w", err)
	}
	if _, err := time.ParseDuration(c.CallTimeout); err != nil {
		return fmt.Errorf("invalid call_timeout: %w", err)
	}
	return nil
}
