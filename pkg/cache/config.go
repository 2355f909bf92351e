package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds connection and sizing parameters for the classification cache.
type Config struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	Namespace string `toml:"namespace"`
	TTL       string `toml:"ttl"`
	FastSize  int    `toml:"fast_size"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Addr      string
	Password  string
	DB        string
	Namespace string
	TTL       string
	FastSize  string
}

// TTLDuration returns TTL as a time.Duration.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
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
	if overlay.Addr != "" {
		c.Addr = overlay.Addr
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.DB != 0 {
		c.DB = overlay.DB
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.FastSize != 0 {
		c.FastSize = overlay.FastSize
	}
}

func (c *Config) loadDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.Namespace == "" {
		c.Namespace = "pathclass:classification"
	}
	if c.TTL == "" {
		c.TTL = "720h" // 30 days
	}
	if c.FastSize == 0 {
		c.FastSize = 4096
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Addr != "" {
		if v := os.Getenv(env.Addr); v != "" {
			c.Addr = v
		}
	}
	if env.Password != "" {
		if v := os.Getenv(env.Password); v != "" {
			c.Password = v
		}
	}
	if env.DB != "" {
		if v := os.Getenv(env.DB); v != "" {
			if db, err := strconv.Atoi(v); err == nil {
				c.DB = db
			}
		}
	}
	if env.Namespace != "" {
		if v := os.Getenv(env.Namespace); v != "" {
			c.Namespace = v
		}
	}
	if env.TTL != "" {
		if v := os.Getenv(env.TTL); v != "" {
			c.TTL = v
		}
	}
	if env.FastSize != "" {
		if v := os.Getenv(env.FastSize); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.FastSize = n
			}
		}
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.TTL); err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if c.FastSize < 1 {
		return fmt.Errorf("invalid fast_size: %d", c.FastSize)
	}
	return nil
}
