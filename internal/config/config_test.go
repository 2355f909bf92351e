package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/linnaea/pathclass/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d", cfg.Server.Port)
	}
	if cfg.Cache.Addr != "localhost:6379" {
		t.Errorf("cache addr: got %q", cfg.Cache.Addr)
	}
	if cfg.Cache.TTLDuration() != 720*time.Hour {
		t.Errorf("cache ttl: got %v", cfg.Cache.TTLDuration())
	}
	if cfg.Pipeline.BatchSize != 50 || cfg.Pipeline.Concurrency != 5 {
		t.Errorf("pipeline: got %+v", cfg.Pipeline)
	}
	if cfg.Pipeline.TrustedSource != "Reactome" {
		t.Errorf("trusted source: got %q", cfg.Pipeline.TrustedSource)
	}
	if cfg.Reasoner.MaxAttempts != 3 {
		t.Errorf("reasoner attempts: got %d", cfg.Reasoner.MaxAttempts)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path: got %q", cfg.API.BasePath)
	}
	if cfg.API.MaxPayloadSizeBytes() != 20*1024*1024 {
		t.Errorf("payload cap: got %d", cfg.API.MaxPayloadSizeBytes())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadBaseConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	base := `
shutdown_timeout = "45s"

[server]
port = 9090

[cache]
addr = "redis.internal:6379"
ttl = "24h"

[pipeline]
batch_size = 25
trusted_source = "CuratedDB"

[api]
max_payload_size = "5MB"
`
	if err := os.WriteFile("config.toml", []byte(base), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d", cfg.Server.Port)
	}
	if cfg.Cache.Addr != "redis.internal:6379" {
		t.Errorf("cache addr: got %q", cfg.Cache.Addr)
	}
	if cfg.Cache.TTLDuration() != 24*time.Hour {
		t.Errorf("cache ttl: got %v", cfg.Cache.TTLDuration())
	}
	if cfg.Pipeline.BatchSize != 25 {
		t.Errorf("batch size: got %d", cfg.Pipeline.BatchSize)
	}
	if cfg.Pipeline.TrustedSource != "CuratedDB" {
		t.Errorf("trusted source: got %q", cfg.Pipeline.TrustedSource)
	}
	if cfg.API.MaxPayloadSizeBytes() != 5*1024*1024 {
		t.Errorf("payload cap: got %d", cfg.API.MaxPayloadSizeBytes())
	}
	// Unset sections still finalize to defaults.
	if cfg.Pipeline.Concurrency != 5 {
		t.Errorf("concurrency default: got %d", cfg.Pipeline.Concurrency)
	}
}

func TestLoadEnvironmentOverlay(t *testing.T) {
	t.Chdir(t.TempDir())

	base := `
[server]
port = 9090

[cache]
namespace = "base:ns"
`
	overlay := `
[server]
port = 9999

[pipeline]
concurrency = 2
`
	if err := os.WriteFile("config.toml", []byte(base), 0o644); err != nil {
		t.Fatalf("write base: %v", err)
	}
	if err := os.WriteFile("config.staging.toml", []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	t.Setenv(config.EnvPathclassEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Env() != "staging" {
		t.Errorf("env: got %q", cfg.Env())
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("overlay port: got %d", cfg.Server.Port)
	}
	// Base values the overlay does not touch survive the merge.
	if cfg.Cache.Namespace != "base:ns" {
		t.Errorf("namespace: got %q", cfg.Cache.Namespace)
	}
	if cfg.Pipeline.Concurrency != 2 {
		t.Errorf("overlay concurrency: got %d", cfg.Pipeline.Concurrency)
	}
}

func TestEnvironmentVariableOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("PATHCLASS_SERVER_PORT", "7070")
	t.Setenv("PATHCLASS_CACHE_TTL", "48h")
	t.Setenv("PATHCLASS_PIPELINE_TRUSTED_SOURCE", "GoldStandard")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server port: got %d", cfg.Server.Port)
	}
	if cfg.Cache.TTL != "48h" {
		t.Errorf("cache ttl: got %q", cfg.Cache.TTL)
	}
	if cfg.Pipeline.TrustedSource != "GoldStandard" {
		t.Errorf("trusted source: got %q", cfg.Pipeline.TrustedSource)
	}
	if cfg.Reasoner.APIKey != "test-key" {
		t.Errorf("api key not sourced from environment")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad shutdown timeout", "shutdown_timeout = \"never\"\n"},
		{"bad port", "[server]\nport = 70000\n"},
		{"bad cache ttl", "[cache]\nttl = \"fortnight\"\n"},
		{"bad batch size", "[pipeline]\nbatch_size = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			if err := os.WriteFile("config.toml", []byte(tt.toml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := config.Load(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
