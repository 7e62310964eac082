package matching

import "github.com/katalvlaran/cpdmine/graphmodel"

// VF2 is the exact-isomorphism-only matcher: it never produces a
// RelaxedMatch, per spec §4.3.
type VF2 struct{}

var _ Matcher = VF2{}

func (VF2) Match(a, b *graphmodel.Graph) MatchResult {
	if VF2Isomorphic(a, b) {
		return ExactMatch
	}
	return NoMatch
}

// Distance reports 0 for an isomorphic pair and 1 otherwise, since VF2 has
// no native scalar distance.
func (VF2) Distance(a, b *graphmodel.Graph) float64 {
	if VF2Isomorphic(a, b) {
		return 0
	}
	return 1
}

// VF2Isomorphic reports whether a and b are isomorphic: a bijection between
// their vertices that preserves (label,type) on every vertex and the full
// multiset of (label, direction) on every edge, in both directions. This is
// a backtracking search in the spirit of VF2 (Cordella et al.), specialized
// for the small, write-once candidate graphs this package compares — no
// assignment/graph-isomorphism library exists anywhere in the example pack
// this module was grounded on, so the search is hand-written against
// graphmodel.Adjacency, the package's own dense adjacency view.
func VF2Isomorphic(a, b *graphmodel.Graph) bool {
	adjA := a.Adjacency()
	adjB := b.Adjacency()
	n := len(adjA.Nodes)
	if n != len(adjB.Nodes) {
		return false
	}
	if n == 0 {
		return true
	}
	if totalEdges(adjA) != totalEdges(adjB) {
		return false
	}

	mapAB := make([]int, n) // mapAB[i] = j means A's vertex i maps to B's vertex j
	mapBA := make([]int, n)
	for i := range mapAB {
		mapAB[i] = -1
		mapBA[i] = -1
	}

	return vf2Search(adjA, adjB, 0, mapAB, mapBA)
}

func totalEdges(adj *graphmodel.Adjacency) int {
	total := 0
	for _, out := range adj.Out {
		total += len(out)
	}
	return total
}

// vf2Search attempts to extend the partial mapping to cover vertex i of A,
// then recurses to i+1, backtracking on failure.
func vf2Search(adjA, adjB *graphmodel.Adjacency, i int, mapAB, mapBA []int) bool {
	if i == len(adjA.Nodes) {
		return true
	}

	for j := range adjB.Nodes {
		if mapBA[j] != -1 {
			continue
		}
		if adjA.Nodes[i] != adjB.Nodes[j] {
			continue
		}
		if !vf2Consistent(adjA, adjB, i, j, mapAB, mapBA) {
			continue
		}

		mapAB[i] = j
		mapBA[j] = i
		if vf2Search(adjA, adjB, i+1, mapAB, mapBA) {
			return true
		}
		mapAB[i] = -1
		mapBA[j] = -1
	}
	return false
}

// vf2Consistent checks that mapping A's vertex i to B's vertex j agrees,
// edge-for-edge in both directions, with every vertex already mapped, plus
// i and j's own self-loops. Self-loops must be checked here explicitly:
// when i is being placed it is not yet present in mapAB, so the loop below
// (which only walks already-mapped k) would otherwise never compare i→i
// against j→j.
func vf2Consistent(adjA, adjB *graphmodel.Adjacency, i, j int, mapAB, mapBA []int) bool {
	if !sameMultiset(edgeLabels(adjA.Out[i], i), edgeLabels(adjB.Out[j], j)) {
		return false
	}

	for k := 0; k < len(mapAB); k++ {
		if mapAB[k] == -1 {
			continue
		}
		jk := mapAB[k]
		if !sameMultiset(edgeLabels(adjA.Out[k], i), edgeLabels(adjB.Out[jk], j)) {
			return false
		}
		if !sameMultiset(edgeLabels(adjA.Out[i], k), edgeLabels(adjB.Out[j], jk)) {
			return false
		}
	}
	return true
}

// edgeLabels returns the multiset of edge labels among out that target dst.
func edgeLabels(out []graphmodel.AdjEdge, dst int) map[uint64]int {
	labels := make(map[uint64]int)
	for _, e := range out {
		if e.To == dst {
			labels[e.Label]++
		}
	}
	return labels
}

func sameMultiset(one, other map[uint64]int) bool {
	if len(one) != len(other) {
		return false
	}
	for k, v := range one {
		if other[k] != v {
			return false
		}
	}
	return true
}
