package heredity

import (
	"runtime"
	"sync"

	"github.com/carbocation/pfx"
)

// InferParallel computes the same posteriors as Infer, partitioning the
// trait-candidate space across workers. Every scenario evaluation is
// independent and reads only the immutable tables, so each worker fills a
// local accumulator over its stride of trait candidates; the partials are
// summed and normalized once at the end. If workers is not positive, one
// worker per CPU is launched.
func InferParallel(ped Pedigree, pt ProbabilityTables, workers int) (map[string]*Posterior, error) {
	order := ped.Names()

	members, observedMask, presentMask, err := prepare(ped, order)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	all := maskAll(len(order))
	stride := uint64(workers)
	partials := make(chan *accumulator, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func(start uint64) {
			defer wg.Done()

			acc := newAccumulator(len(order))
			for traitMask := start; traitMask <= all; traitMask += stride {
				if traitMask&observedMask != presentMask {
					continue
				}
				accumulateGeneAssignments(members, traitMask, all, pt, acc)
			}

			partials <- acc
		}(uint64(w))
	}

	go func() {
		wg.Wait()
		close(partials)
	}()

	total := newAccumulator(len(order))
	for acc := range partials {
		total.merge(acc)
	}

	return total.normalize(order)
}
