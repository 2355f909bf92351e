package config

import (
	"fmt"
	"os"

	"github.com/linnaea/pathclass/pkg/formatting"
	"github.com/linnaea/pathclass/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PATHCLASS_CORS_ENABLED",
	Origins:          "PATHCLASS_CORS_ORIGINS",
	AllowedMethods:   "PATHCLASS_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PATHCLASS_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PATHCLASS_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PATHCLASS_CORS_MAX_AGE",
}

// APIConfig holds API routing, CORS, and payload limit settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxPayloadSize string                `toml:"max_payload_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
}

// MaxPayloadSizeBytes returns the request body cap as a byte count.
func (c *APIConfig) MaxPayloadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxPayloadSize)
	if err != nil {
		return 20 * 1024 * 1024 // 20MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxPayloadSize != "" {
		c.MaxPayloadSize = overlay.MaxPayloadSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxPayloadSize == "" {
		c.MaxPayloadSize = "20MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("PATHCLASS_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("PATHCLASS_API_MAX_PAYLOAD_SIZE"); v != "" {
		c.MaxPayloadSize = v
	}
}
