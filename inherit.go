package heredity

// TransmitProbability returns the probability that a parent carrying
// geneCount copies of the causal allele passes one copy to a child. A
// two-copy parent transmits unless the allele mutates away; a zero-copy
// parent transmits only via mutation; for a one-copy parent the mutation
// effect is symmetric and cancels, leaving exactly one half.
func (pt ProbabilityTables) TransmitProbability(geneCount int) float64 {
	switch geneCount {
	case 2:
		return 1 - pt.MutationRate
	case 1:
		return 0.5
	}

	return pt.MutationRate
}

// ChildGeneProbability returns the probability that a child of parents
// carrying motherCount and fatherCount copies ends up with exactly
// childCount copies.
func (pt ProbabilityTables) ChildGeneProbability(childCount, motherCount, fatherCount int) float64 {
	tm := pt.TransmitProbability(motherCount)
	tf := pt.TransmitProbability(fatherCount)

	switch childCount {
	case 2:
		return tm * tf
	case 1:
		// Two disjoint paths lead to one copy (only the mother transmits,
		// or only the father does) and both must be summed. This case is
		// deliberately not derived as 1 minus the other two.
		return tm*(1-tf) + (1-tm)*tf
	}

	return (1 - tm) * (1 - tf)
}
