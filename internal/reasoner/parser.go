package reasoner

import (
	"regexp"
	"strings"
)

// Sentinel marks a field the service failed to supply. It must never survive
// past the orchestrator's fallback stage.
const Sentinel = "Unknown"

// Assignment is one parsed (pathway, class, subclass) triple from a service
// response.
type Assignment struct {
	Pathway  string
	Class    string
	Subclass string
}

var blockSeparator = regexp.MustCompile(`\n[ \t]*\n`)

// Parse converts the service's free-text reply into assignments. Blocks are
// split on blank-line boundaries; within a block the first line matching each
// of the Pathway:/Class:/Subclass: prefixes supplies that field, in any
// order. A missing prefix or empty value yields the sentinel for Class and
// Subclass; a block with no Pathway: line yields an empty pathway name, which
// matches nothing downstream.
func Parse(raw string) []Assignment {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	var assignments []Assignment
	for _, block := range blockSeparator.Split(normalized, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		assignments = append(assignments, parseBlock(block))
	}
	return assignments
}

func parseBlock(block string) Assignment {
	a := Assignment{Class: Sentinel, Subclass: Sentinel}
	var haveClass, haveSubclass bool

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case a.Pathway == "" && strings.HasPrefix(line, "Pathway:"):
			a.Pathway = strings.TrimSpace(strings.TrimPrefix(line, "Pathway:"))
		case !haveClass && strings.HasPrefix(line, "Class:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Class:")); v != "" {
				a.Class = v
				haveClass = true
			}
		case !haveSubclass && strings.HasPrefix(line, "Subclass:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Subclass:")); v != "" {
				a.Subclass = v
				haveSubclass = true
			}
		}
	}

	return a
}
