package heredity

import (
	"math"
	"testing"
)

func TestTransmitProbability(t *testing.T) {
	pt := DefaultTables()

	cases := []struct {
		geneCount int
		expected  float64
	}{
		{0, 0.01},
		{1, 0.5},
		{2, 0.99},
	}

	for _, c := range cases {
		if got := pt.TransmitProbability(c.geneCount); got != c.expected {
			t.Errorf("TransmitProbability(%d): got %v, expected %v", c.geneCount, got, c.expected)
		}
	}
}

func TestChildGeneProbabilityZeroCopyParents(t *testing.T) {
	pt := DefaultTables()

	// Each zero-copy parent transmits only via mutation, so two copies
	// requires two independent mutations.
	if got := pt.ChildGeneProbability(2, 0, 0); math.Abs(got-0.0001) > 1e-15 {
		t.Errorf("child with 2 copies from 0/0 parents: got %v, expected 0.0001", got)
	}
	if got := pt.ChildGeneProbability(1, 0, 0); math.Abs(got-0.0198) > 1e-15 {
		t.Errorf("child with 1 copy from 0/0 parents: got %v, expected 0.0198", got)
	}
	if got := pt.ChildGeneProbability(0, 0, 0); math.Abs(got-0.9801) > 1e-15 {
		t.Errorf("child with 0 copies from 0/0 parents: got %v, expected 0.9801", got)
	}
}

func TestChildGeneProbabilityOneCopySumsBothPaths(t *testing.T) {
	pt := DefaultTables()

	// With a two-copy mother and a zero-copy father, one copy arrives
	// either from the mother without a paternal mutation or from a
	// paternal mutation after the maternal copy mutates away.
	expected := 0.99*0.99 + 0.01*0.01
	if got := pt.ChildGeneProbability(1, 2, 0); math.Abs(got-expected) > 1e-15 {
		t.Errorf("child with 1 copy from 2/0 parents: got %v, expected %v", got, expected)
	}
}

func TestChildGeneProbabilityIsADistribution(t *testing.T) {
	pt := DefaultTables()

	for mother := 0; mother <= 2; mother++ {
		for father := 0; father <= 2; father++ {
			total := 0.0
			for child := 0; child <= 2; child++ {
				p := pt.ChildGeneProbability(child, mother, father)
				if p < 0 {
					t.Errorf("negative probability %v for child %d of %d/%d parents", p, child, mother, father)
				}
				total += p
			}

			if math.Abs(total-1) > 1e-12 {
				t.Errorf("child distribution for %d/%d parents sums to %v, expected 1", mother, father, total)
			}
		}
	}
}
