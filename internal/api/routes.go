package api

import (
	"net/http"

	"github.com/linnaea/pathclass/internal/config"
	"github.com/linnaea/pathclass/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Classifier.Handler(cfg.API.MaxPayloadSizeBytes()).Routes(),
	)
}
