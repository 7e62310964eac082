package patterns

import (
	"sync"

	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/katalvlaran/cpdmine/matching"
)

// pairKey canonicalizes an unordered pair of candidate ids so that
// Match(a,b) and Match(b,a) share one cache slot.
type pairKey struct {
	lo, hi uint64
}

func canonicalPair(a, b uint64) pairKey {
	if a <= b {
		return pairKey{lo: a, hi: b}
	}
	return pairKey{lo: b, hi: a}
}

// matchCache memoizes pairwise MatchResults keyed by canonicalized candidate
// id pairs. Safe for concurrent use: every access is guarded by a single
// mutex, matching the original implementation's DashMap-backed match cache.
type matchCache struct {
	mu      sync.Mutex
	results map[pairKey]matching.MatchResult
}

func newMatchCache() *matchCache {
	return &matchCache{results: make(map[pairKey]matching.MatchResult)}
}

// match returns the cached result for (a,b) if present, otherwise computes
// it with m, caches it, and returns it.
func (c *matchCache) match(m matching.Matcher, a, b *graphmodel.Graph) matching.MatchResult {
	key := canonicalPair(a.ID, b.ID)

	c.mu.Lock()
	if r, ok := c.results[key]; ok {
		c.mu.Unlock()
		return r
	}
	c.mu.Unlock()

	r := m.Match(a, b)

	c.mu.Lock()
	c.results[key] = r
	c.mu.Unlock()
	return r
}

// consumedSet tracks candidate ids already folded into an earlier pattern,
// so the outer scan over candidates does not mint a redundant pattern for
// them. Safe for concurrent use.
type consumedSet struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

func newConsumedSet() *consumedSet {
	return &consumedSet{seen: make(map[uint64]struct{})}
}

func (s *consumedSet) has(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[id]
	return ok
}

func (s *consumedSet) mark(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[id] = struct{}{}
}
