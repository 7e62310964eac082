package patterns

import (
	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/katalvlaran/cpdmine/matching"
)

// Naive groups candidates into patterns, single-threaded. For each
// candidate not already consumed into an earlier pattern, it counts, for
// every other input graph's candidate list, whether that graph contains an
// exact or relaxed occurrence, then keeps the pattern if either threshold is
// met: minSupportExact on FrequencyExact or minSupportRelaxed on
// FrequencyRelaxed (spec §4.4; original's `run_naive`:
// `freq_exact >= support_exact || freq_relaxed >= support_relaxed`). A
// candidate that only reaches minSupportRelaxed is still emitted — dropping
// it would make "lowering support_relaxed can only grow the result set"
// (spec §8) impossible to satisfy.
func Naive(m matching.Matcher, minSupportExact, minSupportRelaxed int, perGraphCandidates [][]*graphmodel.Graph) []PatternResult {
	cache := newMatchCache()
	consumed := newConsumedSet()
	var out []PatternResult

	for _, candidates := range perGraphCandidates {
		for _, c := range candidates {
			if consumed.has(c.ID) {
				continue
			}

			freqExact, freqRelaxed := occurrenceCounts(m, cache, consumed, c, perGraphCandidates)
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

// occurrenceCounts scans every input graph's candidate list for an exact or
// relaxed occurrence of c, marking every other exactly-matching candidate
// (from any graph, c's own included) as consumed so the outer scan skips it.
func occurrenceCounts(
	m matching.Matcher,
	cache *matchCache,
	consumed *consumedSet,
	c *graphmodel.Graph,
	perGraphCandidates [][]*graphmodel.Graph,
) (freqExact, freqRelaxed int) {
	for _, others := range perGraphCandidates {
		exact, relaxed := occursIn(m, cache, consumed, c, others)
		if exact {
			freqExact++
			freqRelaxed++
		} else if relaxed {
			freqRelaxed++
		}
	}
	return freqExact, freqRelaxed
}

// occursIn reports whether c has an exact and/or relaxed occurrence among
// others (one input graph's candidate list).
func occursIn(
	m matching.Matcher,
	cache *matchCache,
	consumed *consumedSet,
	c *graphmodel.Graph,
	others []*graphmodel.Graph,
) (exact, relaxed bool) {
	for _, other := range others {
		switch cache.match(m, c, other) {
		case matching.ExactMatch:
			exact = true
			relaxed = true
			if other.ID != c.ID {
				consumed.mark(other.ID)
			}
		case matching.RelaxedMatch:
			relaxed = true
		}
	}
	return exact, relaxed
}
