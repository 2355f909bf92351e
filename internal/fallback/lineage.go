package fallback

import "strings"

// Lineage is a coarse species bucket used to narrow which subclass vocabulary
// a rule may draw from. It never decides whether a classification is produced.
type Lineage string

// Recognized lineage buckets.
const (
	LineageMammal       Lineage = "mammal"
	LineagePlant        Lineage = "plant"
	LineageInvertebrate Lineage = "simple-invertebrate"
	LineageUnicellular  Lineage = "single-celled-eukaryote"
	LineageProkaryote   Lineage = "prokaryote-or-archaea"
	LineageUnknown      Lineage = "unknown"
)

var lineageMarkers = []struct {
	lineage Lineage
	genera  []string
}{
	{LineageMammal, []string{
		"homo sapiens", "mus musculus", "rattus", "bos taurus", "canis",
		"sus scrofa", "macaca", "pan troglodytes", "oryctolagus", "ovis",
	}},
	{LineagePlant, []string{
		"arabidopsis", "oryza", "zea mays", "glycine max", "solanum",
		"triticum", "hordeum", "physcomitrella", "chlamydomonas",
	}},
	{LineageInvertebrate, []string{
		"drosophila", "caenorhabditis", "anopheles", "apis mellifera",
		"bombyx", "aedes",
	}},
	{LineageUnicellular, []string{
		"saccharomyces", "schizosaccharomyces", "candida", "plasmodium",
		"dictyostelium", "trypanosoma", "leishmania", "toxoplasma",
	}},
	{LineageProkaryote, []string{
		"escherichia", "bacillus", "mycobacterium", "salmonella",
		"streptococcus", "staphylococcus", "pseudomonas", "synechocystis",
		"methanocaldococcus", "methanococcus", "halobacterium",
		"archaeoglobus", "sulfolobus", "thermococcus", "pyrococcus",
	}},
}

// LineageOf buckets a species designation. Unrecognized or empty species
// resolve to LineageUnknown, which leaves every rule eligible.
func LineageOf(species string) Lineage {
	s := strings.ToLower(strings.TrimSpace(species))
	if s == "" {
		return LineageUnknown
	}
	for _, m := range lineageMarkers {
		for _, genus := range m.genera {
			if strings.Contains(s, genus) {
				return m.lineage
			}
		}
	}
	return LineageUnknown
}
