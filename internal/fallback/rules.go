package fallback

// rule maps keyword matches on the lower-cased pathway name to a fixed
// (class, subclass) pair. When lineages is non-empty the rule only applies to
// species in those buckets; LineageUnknown always qualifies.
type rule struct {
	keywords []string
	class    string
	subclass string
	lineages []Lineage
}

// rules are evaluated in priority order and the first match wins. Order is
// the tie-break policy; reordering changes results and breaks reproducibility.
var rules = []rule{
	// Plant-specific energy capture outranks generic energy keywords.
	{
		keywords: []string{"photosynthesis", "light harvesting", "chlorophyll", "calvin cycle"},
		class:    "Plant Processes", subclass: "Photosynthesis",
		lineages: []Lineage{LineagePlant},
	},
	{
		keywords: []string{"auxin", "gibberellin", "abscisic acid", "jasmonate", "brassinosteroid"},
		class:    "Plant Processes", subclass: "Plant hormone signaling",
		lineages: []Lineage{LineagePlant},
	},

	// Disease rules precede metabolism/signaling so that disease-context
	// pathways are not swallowed by their mechanistic keywords.
	{
		keywords: []string{"infection", "viral", "virus", "bacterial invasion", "pathogen", "tuberculosis", "malaria"},
		class:    "Disease", subclass: "Infectious disease",
	},
	{
		keywords: []string{"cancer", "carcinoma", "melanoma", "glioma", "leukemia", "tumor"},
		class:    "Disease", subclass: "Cancer",
	},
	{
		keywords: []string{"alzheimer", "parkinson", "huntington", "neurodegeneration"},
		class:    "Disease", subclass: "Neurodegenerative disease",
	},
	{
		keywords: []string{"diabetes", "obesity", "insulin resistance"},
		class:    "Disease", subclass: "Metabolic disease",
	},

	// Immune system.
	{
		keywords: []string{"toll-like", "toll like", "complement", "inflammasome", "innate immun"},
		class:    "Immune System", subclass: "Innate immune system",
	},
	{
		keywords: []string{"t cell", "b cell", "antigen presentation", "mhc", "immunoglobulin", "adaptive immun"},
		class:    "Immune System", subclass: "Adaptive immune system",
		lineages: []Lineage{LineageMammal},
	},
	{
		keywords: []string{"interleukin", "interferon", "cytokine", "tnf", "chemokine"},
		class:    "Immune System", subclass: "Cytokine signaling",
		lineages: []Lineage{LineageMammal, LineageInvertebrate},
	},

	// Genetic information processing.
	{
		keywords: []string{"chromatin", "histone", "epigenetic", "methylation of dna"},
		class:    "Gene Expression", subclass: "Chromatin organization",
		lineages: []Lineage{LineageMammal, LineagePlant, LineageInvertebrate, LineageUnicellular},
	},
	{
		keywords: []string{"transcription", "rna polymerase"},
		class:    "Gene Expression", subclass: "Transcription",
	},
	{
		keywords: []string{"splicing", "spliceosome", "mrna processing", "rrna processing", "trna modification"},
		class:    "Gene Expression", subclass: "RNA processing",
	},
	{
		keywords: []string{"translation", "ribosome", "aminoacyl"},
		class:    "Gene Expression", subclass: "Translation",
	},

	// DNA maintenance.
	{
		keywords: []string{"dna repair", "dna damage", "excision repair", "mismatch repair", "homologous recombination"},
		class:    "DNA Replication and Repair", subclass: "DNA damage response",
	},
	{
		keywords: []string{"dna replication", "origin licensing", "replication fork"},
		class:    "DNA Replication and Repair", subclass: "DNA replication",
	},

	// Cell cycle and death.
	{
		keywords: []string{"meiosis", "meiotic"},
		class:    "Cell Cycle", subclass: "Meiosis",
	},
	{
		keywords: []string{"checkpoint"},
		class:    "Cell Cycle", subclass: "Cell cycle checkpoints",
	},
	{
		keywords: []string{"cell cycle", "mitosis", "mitotic", "cyclin", "spindle"},
		class:    "Cell Cycle", subclass: "Mitotic cell cycle",
	},
	{
		keywords: []string{"apoptosis", "apoptotic", "caspase", "programmed cell death"},
		class:    "Cell Death", subclass: "Apoptosis",
	},
	{
		keywords: []string{"autophagy", "mitophagy"},
		class:    "Cell Death", subclass: "Autophagy",
	},
	{
		keywords: []string{"necrosis", "necroptosis", "pyroptosis", "ferroptosis"},
		class:    "Cell Death", subclass: "Regulated necrosis",
	},

	// Neuronal system before generic signaling: synaptic pathways carry
	// receptor/channel keywords that would otherwise match below.
	{
		keywords: []string{"synap", "neurotransmitter", "axon guidance", "dopamin", "serotonin", "gaba", "glutamatergic"},
		class:    "Neuronal System", subclass: "Neurotransmission",
		lineages: []Lineage{LineageMammal, LineageInvertebrate},
	},

	// Signal transduction.
	{
		keywords: []string{"gpcr", "g protein-coupled", "g-protein coupled", "adrenergic", "muscarinic", "olfactory receptor"},
		class:    "Signal Transduction", subclass: "GPCR signaling",
	},
	{
		keywords: []string{"egfr", "fgfr", "receptor tyrosine kinase", "vegf", "pdgf", "insulin receptor", "ngf"},
		class:    "Signal Transduction", subclass: "Signaling by receptor tyrosine kinases",
	},
	{
		keywords: []string{"estrogen", "androgen", "glucocorticoid", "thyroid hormone", "hormone"},
		class:    "Signal Transduction", subclass: "Hormone signaling",
	},
	{
		keywords: []string{"wnt", "notch", "hedgehog", "mapk", "pi3k", "akt", "mtor", "jak", "stat", "nf-kb", "tgf-beta", "signaling", "signal transduction", "second messenger", "kinase cascade"},
		class:    "Signal Transduction", subclass: "Intracellular signaling",
	},

	// Transport.
	{
		keywords: []string{"vesicle", "exocytosis", "endocytosis", "golgi-to-er", "copi", "copii", "clathrin"},
		class:    "Transport", subclass: "Vesicle-mediated transport",
	},
	{
		keywords: []string{"transport", "transporter", "abc ", "ion channel", "aquaporin", "secretion system", "efflux"},
		class:    "Transport", subclass: "Membrane transport",
	},

	// Development.
	{
		keywords: []string{"differentiation", "development", "morphogenesis", "organogenesis", "stem cell"},
		class:    "Development", subclass: "Cell differentiation",
	},

	// Metabolism last: the broadest keyword surface.
	{
		keywords: []string{"glycolysis", "gluconeogenesis", "pentose phosphate", "glycogen", "starch", "sucrose", "fructose", "galactose", "carbohydrate"},
		class:    "Metabolism", subclass: "Metabolism of carbohydrates",
	},
	{
		keywords: []string{"fatty acid", "lipid", "sphingolipid", "steroid", "cholesterol", "bile acid", "phospholipid", "triacylglycerol"},
		class:    "Metabolism", subclass: "Metabolism of lipids",
	},
	{
		keywords: []string{"purine", "pyrimidine", "nucleotide"},
		class:    "Metabolism", subclass: "Metabolism of nucleotides",
	},
	{
		keywords: []string{"citrate cycle", "citric acid", "tca cycle", "oxidative phosphorylation", "electron transport", "atp synthesis", "respiration"},
		class:    "Metabolism", subclass: "Energy metabolism",
	},
	{
		keywords: []string{"vitamin", "cofactor", "folate", "biotin", "thiamine", "riboflavin", "porphyrin"},
		class:    "Metabolism", subclass: "Metabolism of cofactors and vitamins",
	},
	{
		keywords: []string{"cytochrome p450", "xenobiotic", "drug metabolism", "glucuronidation"},
		class:    "Metabolism", subclass: "Biological oxidations",
	},
	{
		keywords: []string{"amino acid", "glutathione", "urea cycle", "proteolysis", "ubiquitin", "proteasome", "metabolism"},
		class:    "Metabolism", subclass: "Metabolism of proteins",
	},
}
