package prompts

import "sort"

// vocabulary is the controlled two-level classification hierarchy. Every
// classification emitted by the service or the fallback classifier must come
// from this set; the system instruction encodes it verbatim.
var vocabulary = map[string][]string{
	"Metabolism": {
		"Metabolism of proteins",
		"Metabolism of carbohydrates",
		"Metabolism of lipids",
		"Metabolism of nucleotides",
		"Energy metabolism",
		"Metabolism of cofactors and vitamins",
		"Biological oxidations",
	},
	"Signal Transduction": {
		"Signaling by receptor tyrosine kinases",
		"GPCR signaling",
		"Intracellular signaling",
		"Hormone signaling",
	},
	"Gene Expression": {
		"Transcription",
		"RNA processing",
		"Translation",
		"Chromatin organization",
	},
	"DNA Replication and Repair": {
		"DNA replication",
		"DNA damage response",
	},
	"Cell Cycle": {
		"Mitotic cell cycle",
		"Meiosis",
		"Cell cycle checkpoints",
	},
	"Cell Death": {
		"Apoptosis",
		"Autophagy",
		"Regulated necrosis",
	},
	"Immune System": {
		"Innate immune system",
		"Adaptive immune system",
		"Cytokine signaling",
	},
	"Transport": {
		"Membrane transport",
		"Vesicle-mediated transport",
	},
	"Neuronal System": {
		"Neurotransmission",
	},
	"Development": {
		"Cell differentiation",
	},
	"Plant Processes": {
		"Photosynthesis",
		"Plant hormone signaling",
	},
	"Disease": {
		"Infectious disease",
		"Cancer",
		"Metabolic disease",
		"Neurodegenerative disease",
	},
}

// Classes returns the controlled class names in sorted order.
func Classes() []string {
	classes := make([]string, 0, len(vocabulary))
	for class := range vocabulary {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Subclasses returns the controlled subclass names for a class, or nil when
// the class is not part of the vocabulary.
func Subclasses(class string) []string {
	subs, ok := vocabulary[class]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// Contains reports whether the (class, subclass) pair is part of the
// controlled vocabulary.
func Contains(class, subclass string) bool {
	for _, sub := range vocabulary[class] {
		if sub == subclass {
			return true
		}
	}
	return false
}
