package heredity

// ProbabilityTables carries the fixed parameters of the inheritance model.
// The tables are immutable once constructed: Infer and the calculators only
// ever read them, so one value may be shared across concurrent runs.
type ProbabilityTables struct {
	// GenePrior is the unconditional gene-copy-count distribution for
	// founders, indexed by copy count (0, 1, or 2).
	GenePrior [3]float64

	// TraitGivenGene is the probability of exhibiting the trait conditional
	// on carrying the indexed number of gene copies.
	TraitGivenGene [3]float64

	// MutationRate is the per-transmission probability that an allele
	// mutates into its opposite.
	MutationRate float64
}

// DefaultTables returns the standard model parameters.
func DefaultTables() ProbabilityTables {
	return ProbabilityTables{
		GenePrior:      [3]float64{0.96, 0.03, 0.01},
		TraitGivenGene: [3]float64{0.01, 0.56, 0.65},
		MutationRate:   0.01,
	}
}

// TraitProbability is the probability of the given trait outcome conditional
// on carrying geneCount copies of the causal allele.
func (pt ProbabilityTables) TraitProbability(geneCount int, hasTrait bool) float64 {
	if hasTrait {
		return pt.TraitGivenGene[geneCount]
	}

	return 1 - pt.TraitGivenGene[geneCount]
}

// Posterior holds one person's normalized posterior distributions after
// inference. Gene is indexed by copy count. Trait[0] is the probability of
// not exhibiting the trait and Trait[1] of exhibiting it. Each of the two
// distributions sums to 1.
type Posterior struct {
	Gene  [3]float64
	Trait [2]float64
}

// TraitP is the posterior probability of the given trait outcome.
func (p *Posterior) TraitP(hasTrait bool) float64 {
	if hasTrait {
		return p.Trait[1]
	}

	return p.Trait[0]
}
