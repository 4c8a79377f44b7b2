package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// MaxPedigreeSize is the largest pedigree Infer accepts. Scenario candidates
// are encoded as 64-bit masks, one bit per person; the enumeration is
// exponential in the pedigree size in any case, so the limit is generous.
const MaxPedigreeSize = 63

// member is one person resolved against a fixed enumeration order: parent
// references become indexes so the hot loop never touches the name map.
type member struct {
	founder bool
	mother  int
	father  int
}

// Infer computes, for every person in the pedigree, the exact posterior
// distribution over gene-copy count and trait outcome, by enumerating every
// joint gene/trait scenario consistent with the observed evidence, weighting
// each by its joint probability under the tables, and normalizing. The
// pedigree is validated before any enumeration begins.
//
// The work is O(6^n) scenario evaluations for n people in the worst case of
// no observed evidence. That is intentional: this is an exact engine for
// small pedigrees, not an approximate one for large ones. Mass is
// accumulated in plain float64, so a pedigree deep enough to underflow the
// per-scenario product is out of range; there is no log-space fallback.
func Infer(ped Pedigree, pt ProbabilityTables) (map[string]*Posterior, error) {
	order := ped.Names()

	members, observedMask, presentMask, err := prepare(ped, order)
	if err != nil {
		return nil, pfx.Err(err)
	}

	acc := newAccumulator(len(order))
	all := maskAll(len(order))

	for traitMask := uint64(0); ; traitMask++ {
		// Evidence filtering happens before the far larger gene-count
		// enumeration: every person with an observed trait must match.
		if traitMask&observedMask == presentMask {
			accumulateGeneAssignments(members, traitMask, all, pt, acc)
		}

		if traitMask == all {
			break
		}
	}

	return acc.normalize(order)
}

// prepare validates the pedigree and resolves it against the enumeration
// order, returning the per-person parent indexes along with the evidence
// masks: observedMask has a bit set for every person whose trait is
// observed, and presentMask for the subset observed to exhibit it.
func prepare(ped Pedigree, order []string) ([]member, uint64, uint64, error) {
	if err := ped.Validate(); err != nil {
		return nil, 0, 0, pfx.Err(err)
	}

	if len(order) > MaxPedigreeSize {
		return nil, 0, 0, pfx.Err(fmt.Errorf("the pedigree holds %d people, above the maximum of %d", len(order), MaxPedigreeSize))
	}

	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}

	members := make([]member, len(order))
	var observedMask, presentMask uint64
	for i, name := range order {
		p := ped[name]

		if p.Founder() {
			members[i] = member{founder: true}
		} else {
			members[i] = member{mother: index[p.Mother], father: index[p.Father]}
		}

		if p.Trait.Observed() {
			observedMask |= 1 << uint(i)
			if p.Trait == TraitPresent {
				presentMask |= 1 << uint(i)
			}
		}
	}

	return members, observedMask, presentMask, nil
}

// maskAll returns a mask with the low n bits set.
func maskAll(n int) uint64 {
	return uint64(1)<<uint(n) - 1
}

// geneCount reads person i's copy count out of the two bucket masks. Anyone
// in neither bucket carries zero copies: the zero-copy group is always
// derived by exclusion, never enumerated directly.
func geneCount(i int, oneMask, twoMask uint64) int {
	bit := uint64(1) << uint(i)

	switch {
	case twoMask&bit != 0:
		return 2
	case oneMask&bit != 0:
		return 1
	}

	return 0
}

// accumulateGeneAssignments walks every 3-way gene-count partition of the
// person set for one surviving trait candidate and adds each scenario's
// joint probability into the accumulator. The one-copy bucket ranges over
// all subsets, and the two-copy bucket over all submasks of the remainder,
// which yields each of the 3^n assignments exactly once.
func accumulateGeneAssignments(members []member, traitMask, all uint64, pt ProbabilityTables, acc *accumulator) {
	for oneMask := uint64(0); ; oneMask++ {
		rem := all &^ oneMask

		for twoMask := rem; ; twoMask = (twoMask - 1) & rem {
			p := jointProbability(members, oneMask, twoMask, traitMask, pt)
			acc.add(oneMask, twoMask, traitMask, p)

			if twoMask == 0 {
				break
			}
		}

		if oneMask == all {
			break
		}
	}
}

// jointProbability evaluates the probability of one fully specified
// scenario: the product, over every person, of the probability of their
// gene count (the founder prior, or the inheritance distribution given the
// same scenario's parent counts) and of their trait outcome given that
// count.
func jointProbability(members []member, oneMask, twoMask, traitMask uint64, pt ProbabilityTables) float64 {
	p := 1.0

	for i := range members {
		g := geneCount(i, oneMask, twoMask)

		if members[i].founder {
			p *= pt.GenePrior[g]
		} else {
			mg := geneCount(members[i].mother, oneMask, twoMask)
			fg := geneCount(members[i].father, oneMask, twoMask)
			p *= pt.ChildGeneProbability(g, mg, fg)
		}

		p *= pt.TraitProbability(g, traitMask&(1<<uint(i)) != 0)
	}

	return p
}

// accumulator gathers unnormalized posterior mass per person during
// enumeration. Indexing follows the enumeration order.
type accumulator struct {
	gene  [][3]float64
	trait [][2]float64
}

func newAccumulator(n int) *accumulator {
	return &accumulator{
		gene:  make([][3]float64, n),
		trait: make([][2]float64, n),
	}
}

// add credits one scenario's probability to every person's gene and trait
// mass at the values this scenario assigns them.
func (a *accumulator) add(oneMask, twoMask, traitMask uint64, p float64) {
	for i := range a.gene {
		a.gene[i][geneCount(i, oneMask, twoMask)] += p

		if traitMask&(1<<uint(i)) != 0 {
			a.trait[i][1] += p
		} else {
			a.trait[i][0] += p
		}
	}
}

// merge adds another accumulator's mass into this one.
func (a *accumulator) merge(b *accumulator) {
	for i := range a.gene {
		for g := range a.gene[i] {
			a.gene[i][g] += b.gene[i][g]
		}
		a.trait[i][0] += b.trait[i][0]
		a.trait[i][1] += b.trait[i][1]
	}
}

// normalize rescales each person's gene mass by its 3-entry sum and trait
// mass by its 2-entry sum, exactly once, and keys the result by name. A
// person with identically zero mass means no scenario survived the evidence
// filter, which is reported as an error rather than left to divide to NaN.
func (a *accumulator) normalize(order []string) (map[string]*Posterior, error) {
	posteriors := make(map[string]*Posterior, len(order))

	for i, name := range order {
		geneTotal := a.gene[i][0] + a.gene[i][1] + a.gene[i][2]
		traitTotal := a.trait[i][0] + a.trait[i][1]

		if geneTotal == 0 || traitTotal == 0 {
			return nil, pfx.Err(fmt.Errorf("no scenario is consistent with the observed evidence for person %q", name))
		}

		post := &Posterior{}
		for g := range a.gene[i] {
			post.Gene[g] = a.gene[i][g] / geneTotal
		}
		post.Trait[0] = a.trait[i][0] / traitTotal
		post.Trait[1] = a.trait[i][1] / traitTotal

		posteriors[name] = post
	}

	return posteriors, nil
}
