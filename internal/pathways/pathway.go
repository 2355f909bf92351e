// Package pathways implements the pathway record domain: the tabular input
// and output types and the TSV interchange codec shared by the classification
// pipeline and its HTTP surface.
package pathways

// Record is one input row of the pathway table. PathwayName is the unique
// join key between a record and its classification; two records sharing a
// name receive the same outcome within one run. ExternalIDs is opaque and
// passed through untouched.
type Record struct {
	PathwayName      string `json:"pathway"`
	OriginalClass    string `json:"pathwayClass,omitempty"`
	OriginalSubclass string `json:"subclass,omitempty"`
	Species          string `json:"species"`
	Source           string `json:"source"`
	URL              string `json:"url"`
	ExternalIDs      string `json:"uniprotIds,omitempty"`
}

// ClassifiedRecord is a Record annotated with its assigned classification.
// Both assigned fields are always populated with non-sentinel values by the
// time a record leaves the pipeline.
type ClassifiedRecord struct {
	Record
	AssignedClass    string `json:"aiClassAssigned"`
	AssignedSubclass string `json:"aiSubclassAssigned"`
}

// Preview is the JSON projection of a classified record shown in the
// interactive table. It mirrors ClassifiedRecord minus the pass-through
// external IDs, which only appear in the TSV download.
type Preview struct {
	PathwayName      string `json:"pathway"`
	OriginalClass    string `json:"pathwayClass,omitempty"`
	OriginalSubclass string `json:"subclass,omitempty"`
	Species          string `json:"species"`
	Source           string `json:"source"`
	URL              string `json:"url"`
	AssignedClass    string `json:"aiClassAssigned"`
	AssignedSubclass string `json:"aiSubclassAssigned"`
}

// PreviewOf projects a classified record for the interactive table.
func PreviewOf(c ClassifiedRecord) Preview {
	return Preview{
		PathwayName:      c.PathwayName,
		OriginalClass:    c.OriginalClass,
		OriginalSubclass: c.OriginalSubclass,
		Species:          c.Species,
		Source:           c.Source,
		URL:              c.URL,
		AssignedClass:    c.AssignedClass,
		AssignedSubclass: c.AssignedSubclass,
	}
}
