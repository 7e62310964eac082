package matching_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/katalvlaran/cpdmine/matching"
	"github.com/stretchr/testify/require"
)

// randomGraph builds a small random directed multigraph from f's random
// stream (id only sets the graph's ID): vertex and edge labels are drawn from a narrow alphabet so
// that equal and near-equal graphs occur often enough to exercise every
// MatchResult branch.
func randomGraph(f *fuzz.Fuzzer, id uint64) *graphmodel.Graph {
	g := graphmodel.New(id)
	var n uint8
	f.NilChance(0).Fuzz(&n)
	count := int(n%4) + 1

	for i := 0; i < count; i++ {
		var label, vtype uint8
		f.Fuzz(&label)
		f.Fuzz(&vtype)
		g.CreateVertex(uint64(label%3), uint64(vtype%2))
	}
	var edgeCount uint8
	f.Fuzz(&edgeCount)
	for i := 0; i < int(edgeCount%5); i++ {
		var from, to, label uint8
		f.Fuzz(&from)
		f.Fuzz(&to)
		f.Fuzz(&label)
		g.AddEdge(int(from)%count, int(to)%count, uint64(label%3))
	}
	return g
}

func matchers() []matching.Matcher {
	return []matching.Matcher{
		matching.Cosine{Alpha: 0.5, Tau: 0.6},
		matching.VF2{},
		matching.GED{
			VertexSubCost: 1, VertexInsCost: 1, VertexDelCost: 1,
			EdgeSubCost: 1, EdgeInsCost: 1, EdgeDelCost: 1,
			Threshold: 2,
		},
	}
}

func TestMatcherReflexivity(t *testing.T) {
	f := fuzz.New()
	for seed := uint64(0); seed < 40; seed++ {
		g := randomGraph(f, seed)
		for _, m := range matchers() {
			require.Equal(t, matching.ExactMatch, m.Match(g, g), "matcher %T must consider a graph identical to itself", m)
		}
	}
}

func TestMatcherSymmetry(t *testing.T) {
	f := fuzz.New()
	for seed := uint64(0); seed < 40; seed++ {
		a := randomGraph(f, seed)
		b := randomGraph(f, seed+1000)
		for _, m := range matchers() {
			require.Equal(t, m.Match(a, b), m.Match(b, a), "matcher %T must be symmetric", m)
		}
	}
}

func TestCosineSimilarityBoundedUnitInterval(t *testing.T) {
	f := fuzz.New()
	c := matching.Cosine{Alpha: 0.5, Tau: 0.5}
	for seed := uint64(0); seed < 40; seed++ {
		a := randomGraph(f, seed)
		b := randomGraph(f, seed+1000)
		d := c.Distance(a, b)
		require.GreaterOrEqual(t, d, 0.0)
		require.LessOrEqual(t, d, 1.0+1e-9)
	}
}

func TestGEDSelfDistanceIsZero(t *testing.T) {
	f := fuzz.New()
	g := matching.GED{
		VertexSubCost: 1, VertexInsCost: 1, VertexDelCost: 1,
		EdgeSubCost: 1, EdgeInsCost: 1, EdgeDelCost: 1,
		Threshold: 2,
	}
	for seed := uint64(0); seed < 40; seed++ {
		a := randomGraph(f, seed)
		require.Zero(t, g.Distance(a, a))
	}
}
