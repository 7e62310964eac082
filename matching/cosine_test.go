package matching_test

import (
	"testing"

	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/katalvlaran/cpdmine/matching"
	"github.com/stretchr/testify/require"
)

func chainGraph(id uint64) *graphmodel.Graph {
	g := graphmodel.New(id)
	g.CreateVertex(1, 2)
	g.CreateVertex(2, 2)
	g.AddEdge(0, 1, 10)
	return g
}

func TestCosineIdenticalGraphsAreExact(t *testing.T) {
	c := matching.Cosine{Alpha: 0.5, Tau: 0.8}
	a, b := chainGraph(1), chainGraph(2)
	require.Equal(t, matching.ExactMatch, c.Match(a, b))
}

func TestCosineRelabeledGraphIsNotExact(t *testing.T) {
	c := matching.Cosine{Alpha: 0.5, Tau: 0.8}
	a := chainGraph(1)
	b := graphmodel.New(2)
	b.CreateVertex(1, 2)
	b.CreateVertex(2, 2)
	b.AddEdge(0, 1, 99) // same label/type histogram, different edge label
	require.NotEqual(t, matching.ExactMatch, c.Match(a, b))
}

func TestCosineDisjointHistogramsAreNoMatch(t *testing.T) {
	c := matching.Cosine{Alpha: 0.5, Tau: 0.8}
	a := chainGraph(1)
	b := graphmodel.New(2)
	b.CreateVertex(7, 7)
	b.CreateVertex(8, 8)
	require.Equal(t, matching.NoMatch, c.Match(a, b))
}

func TestCosineBetweenTauAndSaturationIsRelaxed(t *testing.T) {
	c := matching.Cosine{Alpha: 1.0, Tau: 0.1}
	a := graphmodel.New(1)
	a.CreateVertex(1, 2)
	a.CreateVertex(1, 2)
	a.CreateVertex(5, 5)

	b := graphmodel.New(2)
	b.CreateVertex(1, 2)
	b.CreateVertex(1, 2)
	b.CreateVertex(1, 2)

	require.Equal(t, matching.RelaxedMatch, c.Match(a, b))
}

func TestCosineSimilarityIsSymmetric(t *testing.T) {
	c := matching.Cosine{Alpha: 0.5, Tau: 0.8}
	a := chainGraph(1)
	b := graphmodel.New(2)
	b.CreateVertex(1, 2)
	b.CreateVertex(2, 2)
	b.CreateVertex(3, 3)
	require.InDelta(t, c.Distance(a, b), c.Distance(b, a), 1e-9)
}

func TestCosineSelfMatchIsExact(t *testing.T) {
	c := matching.Cosine{Alpha: 0.3, Tau: 0.5}
	a := chainGraph(1)
	require.Equal(t, matching.ExactMatch, c.Match(a, a))
}
