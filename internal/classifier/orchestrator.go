// Package classifier implements the batched, cached, fault-tolerant
// classification pipeline. It partitions input into trusted pass-through
// rows and to-classify batches, resolves cache hits, dispatches uncached
// batches to the reasoning service under a bounded worker pool, closes every
// gap with the deterministic fallback classifier, writes resolved results
// back to the cache, and streams progress to the caller.
package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/linnaea/pathclass/internal/fallback"
	"github.com/linnaea/pathclass/internal/pathways"
	"github.com/linnaea/pathclass/internal/prompts"
	"github.com/linnaea/pathclass/internal/reasoner"
	"github.com/linnaea/pathclass/pkg/cache"
	"github.com/linnaea/pathclass/pkg/progress"
)

// Run executes the full pipeline. Empty input is the only precondition
// failure; everything downstream of a well-formed input yields a complete,
// fully classified result set.
func (s *system) Run(
	ctx context.Context,
	records []pathways.Record,
	forceRefresh bool,
	sink progress.Sink,
) (*Result, error) {
	if len(records) == 0 {
		return nil, pathways.ErrEmptyInput
	}

	start := time.Now()
	logger := s.logger.With("run_id", uuid.New())

	if forceRefresh {
		s.cache.ClearFastTier()
		logger.Info("fast cache tier cleared for force refresh")
	}

	trusted, others := s.partition(records)
	classifiedTrusted := s.passThrough(trusted)
	examples := curatedExamples(trusted)
	batches := makeBatches(others, s.cfg.BatchSize)

	logger.Info(
		"run starting",
		"total", len(records),
		"trusted", len(trusted),
		"to_classify", len(others),
		"batches", len(batches),
		"force_refresh", forceRefresh,
	)

	total := len(records)
	var processed atomic.Int64
	processed.Store(int64(len(trusted)))
	emit(sink, int(processed.Load()), total, "Trusted pathways carried forward")

	// Bounded worker pool: each batch owns a disjoint slice of records, so
	// workers share no mutable state beyond the cache.
	results := make([][]pathways.ClassifiedRecord, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, batch := range batches {
		g.Go(func() error {
			results[i] = s.processBatch(gctx, logger, batch, forceRefresh, examples)
			done := processed.Add(int64(len(batch)))
			emit(sink, int(done), total, fmt.Sprintf("Classified %d of %d pathways", done, total))
			return nil
		})
	}

	// processBatch absorbs every failure, so Wait only observes ctx errors.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var classifiedOthers []pathways.ClassifiedRecord
	for _, r := range results {
		classifiedOthers = append(classifiedOthers, r...)
	}

	ordered, tsv := Assemble(classifiedOthers, classifiedTrusted)
	elapsed := time.Since(start)

	logger.Info("run complete", "total", total, "elapsed", elapsed)

	return &Result{
		Records: ordered,
		TSV:     tsv,
		Elapsed: elapsed,
		Total:   total,
	}, nil
}

// processBatch resolves one batch: cache lookups first, a single combined
// service call for the misses, fallback for anything still unresolved, then
// cache write-back. It never fails; a dead service or malformed response
// degrades the batch to fallback classification.
func (s *system) processBatch(
	ctx context.Context,
	logger *slog.Logger,
	batch []pathways.Record,
	forceRefresh bool,
	examples []prompts.Example,
) []pathways.ClassifiedRecord {
	names := uniqueNames(batch)

	// Force refresh skips cache reads entirely for this run; the durable
	// tier keeps its entries and new results are still written below.
	cached := map[string]cache.Classification{}
	if !forceRefresh {
		cached = s.cache.GetMany(ctx, names)
	}

	var misses []string
	for _, name := range names {
		if _, ok := cached[name]; !ok {
			misses = append(misses, name)
		}
	}

	resolved := map[string]cache.Classification{}
	if len(misses) > 0 {
		user := prompts.BatchInstruction(misses, examples, dominantSpecies(batch))
		raw, err := s.completer.Complete(ctx, prompts.SystemInstruction(), user)
		if err != nil {
			// The whole batch degrades to fallback; sibling batches are
			// unaffected.
			logger.Warn("batch degraded to fallback", "size", len(batch), "error", err)
		} else {
			for _, a := range reasoner.Parse(raw) {
				name := strings.TrimSpace(a.Pathway)
				if name == "" {
					continue
				}
				resolved[name] = cache.Classification{Class: a.Class, Subclass: a.Subclass}
			}
		}
	}

	classified := make([]pathways.ClassifiedRecord, 0, len(batch))
	writeBack := map[string]cache.Classification{}

	for _, rec := range batch {
		name := strings.TrimSpace(rec.PathwayName)

		entry, fromCache := cached[name]
		if !fromCache {
			entry = resolved[name]
		}

		entry = closeGaps(entry, rec)
		classified = append(classified, pathways.ClassifiedRecord{
			Record:           rec,
			AssignedClass:    entry.Class,
			AssignedSubclass: entry.Subclass,
		})

		if !fromCache {
			writeBack[name] = entry
		}
	}

	// Write-back is tied to batch completion, not to result delivery: a
	// disconnecting caller must not leave the cache inconsistent.
	if len(writeBack) > 0 {
		s.cache.SetMany(ctx, writeBack)
	}

	return classified
}

// closeGaps fills any absent or sentinel field from the fallback classifier,
// overwriting only the missing field(s). The result always carries concrete
// values.
func closeGaps(entry cache.Classification, rec pathways.Record) cache.Classification {
	if !unresolvedValue(entry.Class) && !unresolvedValue(entry.Subclass) {
		return entry
	}

	class, subclass := fallback.Classify(rec.PathwayName, rec.Species)
	if unresolvedValue(entry.Class) {
		entry.Class = class
	}
	if unresolvedValue(entry.Subclass) {
		entry.Subclass = subclass
	}
	return entry
}

func unresolvedValue(v string) bool {
	return v == "" || v == reasoner.Sentinel
}

// partition splits records into trusted pass-through rows and rows that need
// classification.
func (s *system) partition(records []pathways.Record) (trusted, others []pathways.Record) {
	for _, rec := range records {
		if rec.Source == s.cfg.TrustedSource {
			trusted = append(trusted, rec)
		} else {
			others = append(others, rec)
		}
	}
	return trusted, others
}

// passThrough copies the original classification forward for trusted rows.
// Trusted rows are expected to always carry an original classification; the
// fallback closes the rare gap so the totality invariant holds regardless.
func (s *system) passThrough(trusted []pathways.Record) []pathways.ClassifiedRecord {
	out := make([]pathways.ClassifiedRecord, 0, len(trusted))
	for _, rec := range trusted {
		entry := closeGaps(cache.Classification{
			Class:    rec.OriginalClass,
			Subclass: rec.OriginalSubclass,
		}, rec)

		out = append(out, pathways.ClassifiedRecord{
			Record:           rec,
			AssignedClass:    entry.Class,
			AssignedSubclass: entry.Subclass,
		})
	}
	return out
}

// curatedExamples selects up to the prompt example cap from trusted rows that
// carry a complete original classification.
func curatedExamples(trusted []pathways.Record) []prompts.Example {
	var examples []prompts.Example
	for _, rec := range trusted {
		if rec.OriginalClass == "" || rec.OriginalSubclass == "" {
			continue
		}
		examples = append(examples, prompts.Example{
			Pathway:  rec.PathwayName,
			Class:    rec.OriginalClass,
			Subclass: rec.OriginalSubclass,
		})
		if len(examples) == prompts.MaxExamples {
			break
		}
	}
	return examples
}

func makeBatches(records []pathways.Record, size int) [][]pathways.Record {
	var batches [][]pathways.Record
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		batches = append(batches, records[start:end:end])
	}
	return batches
}

// uniqueNames returns the trimmed pathway names of a batch in first-seen
// order. Duplicates within a batch collapse to one service request slot.
func uniqueNames(batch []pathways.Record) []string {
	seen := make(map[string]struct{}, len(batch))
	var names []string
	for _, rec := range batch {
		name := strings.TrimSpace(rec.PathwayName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// dominantSpecies returns the batch species when every record agrees, or
// empty when the batch is mixed; the prompt only carries species guidance
// that applies to the whole batch.
func dominantSpecies(batch []pathways.Record) string {
	species := ""
	for _, rec := range batch {
		if rec.Species == "" {
			continue
		}
		if species == "" {
			species = rec.Species
			continue
		}
		if rec.Species != species {
			return ""
		}
	}
	return species
}

func emit(sink progress.Sink, processed, total int, message string) {
	pct := 0
	if total > 0 {
		pct = processed * 100 / total
	}
	sink.Send(progress.Event{
		Processed:  processed,
		Total:      total,
		Percentage: pct,
		Message:    message,
	})
}
