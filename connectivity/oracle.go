package connectivity

import "github.com/katalvlaran/cpdmine/graphmodel"

// inducedEdge is an edge whose both endpoints lie in the candidate vertex
// set, reduced to just what the flood fill needs.
type inducedEdge struct {
	from int
	to   int
}

// IsConnected reports whether the induced subgraph over vertices — keeping
// only edges whose both endpoints are in the set — is weakly connected.
//
// A single-vertex set is always connected. An empty set is a programming
// error (spec §7: out-of-range/invalid input indicates a bug, not a
// recoverable condition), so IsConnected panics rather than returning a
// value a caller could silently ignore.
func IsConnected(vertices []*graphmodel.Vertex) bool {
	if len(vertices) == 0 {
		panic("connectivity: IsConnected called with an empty vertex set")
	}
	if len(vertices) == 1 {
		return true
	}

	ids := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		ids[v.ID] = struct{}{}
	}

	edges := make([]inducedEdge, 0)
	for _, v := range vertices {
		for _, e := range v.Edges {
			if _, to := ids[e.To]; to {
				edges = append(edges, inducedEdge{from: e.From, to: e.To})
			}
		}
	}

	visited := make(map[int]struct{}, len(vertices))
	visited[vertices[0].ID] = struct{}{}

	for len(visited) != len(ids) {
		fired := false
		remaining := edges[:0]
		for _, e := range edges {
			_, fromVisited := visited[e.from]
			_, toVisited := visited[e.to]
			if fromVisited || toVisited {
				visited[e.from] = struct{}{}
				visited[e.to] = struct{}{}
				fired = true
				continue // remove this edge from further consideration
			}
			remaining = append(remaining, e)
		}
		edges = remaining
		if !fired {
			break
		}
	}

	return len(visited) == len(ids)
}
