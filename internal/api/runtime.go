package api

import (
	"github.com/linnaea/pathclass/internal/config"
	"github.com/linnaea/pathclass/internal/infrastructure"
)

// Runtime scopes the shared infrastructure to the API module.
type Runtime struct {
	*infrastructure.Infrastructure
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Cache:     infra.Cache,
			Reasoner:  infra.Reasoner,
		},
	}
}
