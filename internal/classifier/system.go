package classifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/linnaea/pathclass/internal/pathways"
	"github.com/linnaea/pathclass/internal/reasoner"
	"github.com/linnaea/pathclass/pkg/cache"
	"github.com/linnaea/pathclass/pkg/progress"
)

// Result is the complete output of one classification run.
type Result struct {
	Records []pathways.ClassifiedRecord
	TSV     string
	Elapsed time.Duration
	Total   int
}

// System defines the public contract for the classification pipeline.
type System interface {
	Handler(maxBodyBytes int64) *Handler

	// Run classifies all records and returns the assembled result. Progress
	// events flow through sink as batches complete. forceRefresh bypasses
	// cache reads for this run; new results are still written back.
	Run(ctx context.Context, records []pathways.Record, forceRefresh bool, sink progress.Sink) (*Result, error)
}

type system struct {
	cache     cache.System
	completer reasoner.Completer
	cfg       Config
	logger    *slog.Logger
}

// New creates the classification pipeline system.
func New(c cache.System, completer reasoner.Completer, cfg Config, logger *slog.Logger) System {
	return &system{
		cache:     c,
		completer: completer,
		cfg:       cfg,
		logger:    logger.With("system", "classifier"),
	}
}

// Handler returns the HTTP handler bound to this system.
func (s *system) Handler(maxBodyBytes int64) *Handler {
	return NewHandler(s, s.logger, maxBodyBytes)
}
