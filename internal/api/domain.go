package api

import (
	"github.com/linnaea/pathclass/internal/classifier"
	"github.com/linnaea/pathclass/internal/config"
)

// Domain holds the domain systems that comprise the API.
type Domain struct {
	Classifier classifier.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	classifierSystem := classifier.New(
		runtime.Cache,
		runtime.Reasoner,
		cfg.Pipeline,
		runtime.Logger,
	)

	return &Domain{
		Classifier: classifierSystem,
	}
}
