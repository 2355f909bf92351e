// Package api assembles the API module with the classification pipeline and
// route registration.
package api

import (
	"net/http"

	"github.com/linnaea/pathclass/internal/config"
	"github.com/linnaea/pathclass/internal/infrastructure"
	"github.com/linnaea/pathclass/pkg/middleware"
	"github.com/linnaea/pathclass/pkg/module"
)

// NewModule creates the API module with the pipeline handler and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime, cfg)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Infrastructure.Logger))

	return m, nil
}
