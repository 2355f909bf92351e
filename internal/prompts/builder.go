// Package prompts builds the reasoning-service instructions for pathway
// classification: a fixed system instruction carrying the controlled
// vocabulary and output grammar, and a per-batch user instruction listing the
// names to classify.
package prompts

import (
	"fmt"
	"strings"
)

// MaxExamples caps the number of curated example rows included per batch.
const MaxExamples = 5

// Example is one trusted input row used as an in-context classification
// demonstration.
type Example struct {
	Pathway  string
	Class    string
	Subclass string
}

// BatchInstruction builds the per-batch user instruction. names are the
// pathways to classify; examples (capped at MaxExamples) demonstrate curated
// classifications; species, when non-empty, adds adaptation guidance for the
// dominant species of the batch.
func BatchInstruction(names []string, examples []Example, species string) string {
	var b strings.Builder

	if len(examples) > MaxExamples {
		examples = examples[:MaxExamples]
	}
	if len(examples) > 0 {
		b.WriteString("Curated examples from trusted sources:\n\n")
		for _, ex := range examples {
			fmt.Fprintf(&b, "Pathway: %s\nClass: %s\nSubclass: %s\n\n", ex.Pathway, ex.Class, ex.Subclass)
		}
	}

	if species != "" {
		fmt.Fprintf(&b, "These pathways are annotated for %s. Prefer subclasses that are biologically plausible for that organism.\n\n", species)
	}

	b.WriteString("Classify the following pathways:\n\n")
	for _, name := range names {
		b.WriteString(name)
		b.WriteString("\n")
	}

	return b.String()
}
