package patterns

import (
	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/katalvlaran/cpdmine/matching"
	"golang.org/x/sync/errgroup"
)

// Parallel is Naive's concurrent twin: the outer scan over candidates stays
// sequential (the consumed-set decision for one candidate must be settled
// before the next is considered), but the occurrence count for a single
// candidate is fanned out across its input graphs, one goroutine per graph,
// sharing the same match cache and consumed set as Naive. Produces the same
// patterns as Naive for the same input, modulo which candidate a given
// match happens to consume first. Emit condition mirrors Naive's: either
// threshold, minSupportExact or minSupportRelaxed, is sufficient.
func Parallel(m matching.Matcher, minSupportExact, minSupportRelaxed int, perGraphCandidates [][]*graphmodel.Graph) []PatternResult {
	cache := newMatchCache()
	consumed := newConsumedSet()
	var out []PatternResult

	for _, candidates := range perGraphCandidates {
		for _, c := range candidates {
			if consumed.has(c.ID) {
				continue
			}

			freqExact, freqRelaxed := parallelOccurrenceCounts(m, cache, consumed, c, perGraphCandidates)
			if freqExact >= minSupportExact || freqRelaxed >= minSupportRelaxed {
				out = append(out, PatternResult{
					Pattern:          c,
					FrequencyExact:   freqExact,
					FrequencyRelaxed: freqRelaxed,
				})
			}
		}
	}
	return out
}

func parallelOccurrenceCounts(
	m matching.Matcher,
	cache *matchCache,
	consumed *consumedSet,
	c *graphmodel.Graph,
	perGraphCandidates [][]*graphmodel.Graph,
) (freqExact, freqRelaxed int) {
	exactFlags := make([]bool, len(perGraphCandidates))
	relaxedFlags := make([]bool, len(perGraphCandidates))

	var eg errgroup.Group
	for gi, others := range perGraphCandidates {
		gi, others := gi, others
		eg.Go(func() error {
			exact, relaxed := occursIn(m, cache, consumed, c, others)
			exactFlags[gi] = exact
			relaxedFlags[gi] = relaxed
			return nil
		})
	}
	_ = eg.Wait()

	for i := range perGraphCandidates {
		if exactFlags[i] {
			freqExact++
			freqRelaxed++
		} else if relaxedFlags[i] {
			freqRelaxed++
		}
	}
	return freqExact, freqRelaxed
}
