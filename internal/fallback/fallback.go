// Package fallback implements the deterministic rule-based classifier used
// whenever the reasoning service cannot produce a usable result. It is a
// total function: every pathway name resolves to a concrete (class, subclass)
// pair, and the sentinel "Unknown" is never returned.
package fallback

import (
	"slices"
	"strings"
)

// Default classification applied when no rule matches.
const (
	DefaultClass    = "Metabolism"
	DefaultSubclass = "Metabolism of proteins"
)

// Classify resolves a pathway name to a (class, subclass) pair using the
// ordered rule list. species may be empty; when present it buckets into a
// coarse lineage that gates lineage-restricted rules. Classify has no side
// effects and never fails.
func Classify(name, species string) (string, string) {
	lowered := strings.ToLower(name)
	lineage := LineageOf(species)

	for _, r := range rules {
		if !r.eligible(lineage) {
			continue
		}
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.class, r.subclass
			}
		}
	}

	return DefaultClass, DefaultSubclass
}

func (r rule) eligible(lineage Lineage) bool {
	if len(r.lineages) == 0 || lineage == LineageUnknown {
		return true
	}
	return slices.Contains(r.lineages, lineage)
}
