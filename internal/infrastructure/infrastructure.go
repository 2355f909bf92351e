// Package infrastructure provides core service initialization for application
// startup. It assembles the shared dependencies (logging, classification
// cache, reasoning client) that the pipeline requires.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/linnaea/pathclass/internal/config"
	"github.com/linnaea/pathclass/internal/reasoner"
	"github.com/linnaea/pathclass/pkg/cache"
	"github.com/linnaea/pathclass/pkg/lifecycle"
)

// Infrastructure holds the core systems required by the classification
// pipeline: lifecycle coordination, logging, the two-tier cache, and the
// reasoning service client.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Cache     cache.System
	Reasoner  reasoner.Completer
}

// New creates an Infrastructure from the application configuration. An
// unreachable cache backend is not fatal: the cache degrades to its fast
// tier only, matching the pipeline's silent-degradation contract.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	durable, err := cache.NewRedisTier(&cfg.Cache)
	if err != nil {
		logger.Warn("durable cache tier unavailable, running fast tier only", "error", err)
		durable = nil
	}

	store, err := cache.New(&cfg.Cache, durable, logger)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}

	client, err := reasoner.New(context.Background(), &cfg.Reasoner, logger)
	if err != nil {
		return nil, fmt.Errorf("reasoner init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Cache:     store,
		Reasoner:  client,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Cache.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("cache start failed: %w", err)
	}
	return nil
}
