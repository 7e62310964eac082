package candidates_test

import (
	"testing"

	"github.com/katalvlaran/cpdmine/candidates"
	"github.com/katalvlaran/cpdmine/graphmodel"
	"github.com/stretchr/testify/require"
)

// makeBasicGraph mirrors original_source's make_basic_graph: three activity
// vertices (type 2) connected in a chain 0→1→2, all linked to one shared
// object vertex (type 4).
func makeBasicGraph() *graphmodel.Graph {
	g := graphmodel.New(1)
	g.CreateVertex(1, 2) // 0
	g.CreateVertex(2, 2) // 1
	g.CreateVertex(3, 2) // 2
	g.CreateVertex(4, 4) // 3, object

	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 10)

	g.AddEdge(0, 3, 20)
	g.AddEdge(1, 3, 20)
	g.AddEdge(2, 3, 20)
	return g
}

func TestSingleGraphSingleCandidateSize(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{4: {}},
		MinVertices:  2,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph()})
	require.Len(t, result, 1)
	require.Len(t, result[0], 2) // (0,1) and (1,2); (0,2) is not directly connected
}

func TestNonConnectedActivityVerticesRejected(t *testing.T) {
	g := graphmodel.New(1)
	g.CreateVertex(1, 2)
	g.CreateVertex(2, 2)

	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{},
		MinVertices:  2,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{g})
	require.Empty(t, result[0])
}

func TestObjectVerticesAreIncluded(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{4: {}},
		MinVertices:  2,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph()})

	found := false
	for _, c := range result[0] {
		for _, v := range c.Vertices() {
			if v.Type == 4 {
				found = true
			}
		}
	}
	require.True(t, found, "candidate must include object vertices connected to selected activities")
}

func TestMinMaxActivityVertexLimits(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{},
		MinVertices:  3,
		MaxVertices:  3,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph()})
	require.Len(t, result[0], 1)
}

func TestMultipleInputGraphsPreserveOrder(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{4: {}},
		MinVertices:  2,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph(), makeBasicGraph()})
	require.Len(t, result, 2)
	require.Len(t, result[0], 2)
	require.Len(t, result[1], 2)
}

func TestCandidateIDsAreUniqueAndMonotonic(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{4: {}},
		MinVertices:  2,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph(), makeBasicGraph()})

	seen := make(map[uint64]struct{})
	for _, perGraph := range result {
		for _, c := range perGraph {
			_, dup := seen[c.ID]
			require.False(t, dup, "candidate id %d reused", c.ID)
			seen[c.ID] = struct{}{}
		}
	}
}

func TestMinGreaterThanMaxYieldsEmpty(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{},
		MinVertices:  3,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph()})
	require.Empty(t, result[0])
}

func TestNoActivityVerticesYieldsEmpty(t *testing.T) {
	g := graphmodel.New(1)
	g.CreateVertex(1, 9)

	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{},
		MinVertices:  1,
		MaxVertices:  1,
	})
	result := gen.Generate([]*graphmodel.Graph{g})
	require.Empty(t, result[0])
}

func TestCandidateVertexCountWithinBounds(t *testing.T) {
	gen := candidates.New(candidates.Config{
		ActivityType: 2,
		ObjectTypes:  map[uint64]struct{}{4: {}},
		MinVertices:  2,
		MaxVertices:  2,
	})
	result := gen.Generate([]*graphmodel.Graph{makeBasicGraph()})
	for _, c := range result[0] {
		require.GreaterOrEqual(t, len(c.Vertices()), 2)
		require.LessOrEqual(t, len(c.Vertices()), 3) // 2 activities + at most 1 shared object
	}
}
