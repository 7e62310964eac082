package matching

import (
	"sort"

	"github.com/katalvlaran/cpdmine/graphmodel"
)

// GED approximates graph edit distance via the Hungarian assignment
// algorithm: vertices of the larger graph are assigned to vertices of the
// smaller (or to a "deleted"/"inserted" dummy), and the outgoing edges of
// each assigned pair are compared positionally rather than by a nested
// isomorphism search, trading exactness for the O(n^3) Hungarian bound
// instead of GED's true NP-hardness (spec §4.3, "GEDFastHungarian").
type GED struct {
	VertexSubCost float64
	VertexInsCost float64
	VertexDelCost float64
	EdgeSubCost   float64
	EdgeInsCost   float64
	EdgeDelCost   float64
	// Threshold is the maximum distance for a RelaxedMatch.
	Threshold float64
}

var _ Matcher = GED{}

// Distance returns the Hungarian-assignment edit distance between a and b.
func (g GED) Distance(a, b *graphmodel.Graph) float64 {
	_, cost := g.solve(a, b)
	return cost
}

// Match classifies a and b per spec §4.3: distance 0 escalates to VF2
// (confirming ExactMatch, else falling back to RelaxedMatch); distance
// within Threshold is a RelaxedMatch; anything else is NoMatch.
func (g GED) Match(a, b *graphmodel.Graph) MatchResult {
	d := g.Distance(a, b)
	if d == 0 {
		if VF2Isomorphic(a, b) {
			return ExactMatch
		}
		return RelaxedMatch
	}
	if d <= g.Threshold {
		return RelaxedMatch
	}
	return NoMatch
}

// solve builds the padded square cost matrix and runs the Hungarian solver.
func (g GED) solve(a, b *graphmodel.Graph) (assignment []int, cost float64) {
	adjA := a.Adjacency()
	adjB := b.Adjacency()
	nA, nB := len(adjA.Nodes), len(adjB.Nodes)
	n := nA
	if nB > n {
		n = nB
	}
	if n == 0 {
		return nil, 0
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			switch {
			case i < nA && j < nB:
				matrix[i][j] = g.vertexCost(adjA.Nodes[i], adjB.Nodes[j]) +
					g.edgePenalty(adjA.Out[i], adjB.Out[j])
			case i < nA && j >= nB:
				matrix[i][j] = g.VertexDelCost + float64(len(adjA.Out[i]))*g.EdgeDelCost
			case i >= nA && j < nB:
				matrix[i][j] = g.VertexInsCost + float64(len(adjB.Out[j]))*g.EdgeInsCost
			default:
				matrix[i][j] = 0
			}
		}
	}

	return hungarianMinCost(matrix)
}

func (g GED) vertexCost(one, other graphmodel.AdjNode) float64 {
	if one == other {
		return 0
	}
	return g.VertexSubCost
}

// edgePenalty compares two vertices' outgoing edges positionally: both
// sides are sorted by (label, target) first so the comparison is
// deterministic regardless of edge insertion order.
func (g GED) edgePenalty(one, other []graphmodel.AdjEdge) float64 {
	one = sortedEdges(one)
	other = sortedEdges(other)

	shorter := len(one)
	if len(other) < shorter {
		shorter = len(other)
	}

	cost := 0.0
	for k := 0; k < shorter; k++ {
		if one[k].Label != other[k].Label {
			cost += g.EdgeSubCost
		}
	}
	if len(one) > len(other) {
		cost += float64(len(one)-len(other)) * g.EdgeDelCost
	}
	if len(other) > len(one) {
		cost += float64(len(other)-len(one)) * g.EdgeInsCost
	}
	return cost
}

func sortedEdges(edges []graphmodel.AdjEdge) []graphmodel.AdjEdge {
	sorted := append([]graphmodel.AdjEdge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Label != sorted[j].Label {
			return sorted[i].Label < sorted[j].Label
		}
		return sorted[i].To < sorted[j].To
	})
	return sorted
}
