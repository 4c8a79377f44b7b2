package heredity

import (
	"math"
	"testing"
)

func TestJointProbabilitySingleScenario(t *testing.T) {
	ped := testFamily()
	order := ped.Names() // Harry, James, Lily

	members, _, _, err := prepare(ped, order)
	if err != nil {
		t.Fatal(err)
	}

	// The scenario where Harry carries one copy, James two, Lily zero, and
	// only James exhibits the trait:
	//   James:  0.01 (prior for 2) * 0.65 (trait | 2)
	//   Lily:   0.96 (prior for 0) * 0.99 (no trait | 0)
	//   Harry:  0.99*(1-0.01) + (1-0.99)*0.01 = 0.9802, times 0.44 (no trait | 1)
	oneMask := uint64(1) << 0   // Harry
	twoMask := uint64(1) << 1   // James
	traitMask := uint64(1) << 1 // James

	got := jointProbability(members, oneMask, twoMask, traitMask, DefaultTables())
	if expected := 0.0026643247488; math.Abs(got-expected) > 1e-12 {
		t.Errorf("joint probability: got %v, expected %v", got, expected)
	}
}

func TestJointProbabilityVisitsEveryPerson(t *testing.T) {
	ped := testFamily()
	members, _, _, err := prepare(ped, ped.Names())
	if err != nil {
		t.Fatal(err)
	}

	pt := DefaultTables()

	// Summing the joint over every gene assignment and every trait
	// assignment must give exactly 1: the network is a proper joint
	// distribution over all 6^n scenarios.
	all := maskAll(len(members))
	total := 0.0
	for traitMask := uint64(0); ; traitMask++ {
		for oneMask := uint64(0); ; oneMask++ {
			rem := all &^ oneMask
			for twoMask := rem; ; twoMask = (twoMask - 1) & rem {
				total += jointProbability(members, oneMask, twoMask, traitMask, pt)
				if twoMask == 0 {
					break
				}
			}
			if oneMask == all {
				break
			}
		}
		if traitMask == all {
			break
		}
	}

	if math.Abs(total-1) > 1e-9 {
		t.Errorf("joint distribution sums to %v over all scenarios, expected 1", total)
	}
}

func TestGeneCountBucketsAreExclusiveAndExhaustive(t *testing.T) {
	// Person 0 in the two-copy bucket, person 1 in the one-copy bucket,
	// person 2 in neither: the zero-copy bucket is the leftover.
	oneMask := uint64(1) << 1
	twoMask := uint64(1) << 0

	if got := geneCount(0, oneMask, twoMask); got != 2 {
		t.Errorf("person 0: got %d, expected 2", got)
	}
	if got := geneCount(1, oneMask, twoMask); got != 1 {
		t.Errorf("person 1: got %d, expected 1", got)
	}
	if got := geneCount(2, oneMask, twoMask); got != 0 {
		t.Errorf("person 2: got %d, expected 0", got)
	}
}
