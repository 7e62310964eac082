package candidates

import "sync"

// idGenerator hands out globally unique, monotonically increasing candidate
// ids. It is the Go translation of the original Rust implementation's
// GraphIdGenerator(Mutex<usize>) (cpd/candidate_generation.rs): a single
// mutex guarding a single counter. Contention is negligible because the
// critical section is one integer increment — see spec §9's design note.
type idGenerator struct {
	mu   sync.Mutex
	next uint64
}

// nextID returns the next id and advances the counter. Safe for concurrent
// callers; never held across candidate construction (the caller only holds
// it for the duration of this call).
func (g *idGenerator) nextID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}
