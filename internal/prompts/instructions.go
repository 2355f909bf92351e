package prompts

import (
	"fmt"
	"strings"
)

const systemPreamble = `You are a biological pathway curator. You assign each pathway a two-level
classification: a Class and a Subclass drawn from a controlled vocabulary.

Rules:
- The Class MUST be one of the listed classes, exactly as written.
- The Subclass MUST be one of the subclasses listed under the chosen Class.
- Both fields are mandatory for every pathway. The value "Unknown" is not
  allowed; when uncertain, choose the closest match from the vocabulary.
- Classify by biological function, not by data source or species.`

const systemGrammar = `Respond with one block per pathway, blocks separated by a single blank line,
in exactly this format:

Pathway: <name exactly as given>
Class: <class>
Subclass: <subclass>

Do not add commentary, numbering, or any other lines.`

// SystemInstruction returns the fixed system instruction encoding the
// controlled vocabulary, hierarchy rules, and mandated output grammar.
func SystemInstruction() string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\nControlled vocabulary:\n")

	for _, class := range Classes() {
		fmt.Fprintf(&b, "\n%s:\n", class)
		for _, sub := range Subclasses(class) {
			fmt.Fprintf(&b, "  - %s\n", sub)
		}
	}

	b.WriteString("\n")
	b.WriteString(systemGrammar)
	return b.String()
}
