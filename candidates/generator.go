package candidates

import (
	"github.com/katalvlaran/cpdmine/connectivity"
	"github.com/katalvlaran/cpdmine/graphmodel"
	"golang.org/x/sync/errgroup"
)

// Generator enumerates FullyConnected candidates (spec §4.2) from a
// configured activity/object vertex shape.
type Generator struct {
	cfg Config
}

// New returns a Generator for the given Config.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// candidateIDs is the process-wide counter every Generate call draws
// candidate ids from.
var candidateIDs idGenerator

// Generate returns, for each input graph, the list of candidate graphs it
// produces, in (n ascending, combination order ascending) order. Input
// graphs are processed independently, one errgroup worker per graph; the
// order of results always matches the order of graphs regardless of which
// worker finishes first. This component never fails: a malformed Config
// (MinVertices < 1, MinVertices > MaxVertices, no vertices of ActivityType)
// simply yields an
// empty candidate list for the affected graphs, never an error.
func (gen *Generator) Generate(graphs []*graphmodel.Graph) [][]*graphmodel.Graph {
	results := make([][]*graphmodel.Graph, len(graphs))
	idGen := &candidateIDs

	var eg errgroup.Group
	for i, g := range graphs {
		i, g := i, g
		eg.Go(func() error {
			results[i] = gen.generateForGraph(g, idGen)
			return nil
		})
	}
	// generateForGraph never returns an error; Wait only synchronizes.
	_ = eg.Wait()

	return results
}

// generateForGraph runs the FullyConnected enumeration for a single input
// graph, fully sequentially, in the deterministic order spec §4.2 requires.
func (gen *Generator) generateForGraph(g *graphmodel.Graph, idGen *idGenerator) []*graphmodel.Graph {
	cfg := gen.cfg
	activity := g.VerticesByType(cfg.ActivityType)
	candidates := make([]*graphmodel.Graph, 0)
	if cfg.MinVertices < 1 {
		return candidates
	}

	for n := cfg.MinVertices; n <= cfg.MaxVertices; n++ {
		combinations(len(activity), n, func(idx []int) {
			subset := make([]*graphmodel.Vertex, len(idx))
			for i, j := range idx {
				subset[i] = activity[j]
			}
			if !connectivity.IsConnected(subset) {
				return
			}
			if c := buildCandidate(g, subset, cfg, idGen); c != nil {
				candidates = append(candidates, c)
			}
		})
	}

	return candidates
}

// buildCandidate materializes one candidate graph from a connected subset
// of activity vertices, copying in adjacent object vertices and every
// outgoing edge of a subset vertex whose target ends up in the candidate.
// Edges leaving an object vertex are not copied.
func buildCandidate(g *graphmodel.Graph, subset []*graphmodel.Vertex, cfg Config, idGen *idGenerator) *graphmodel.Graph {
	c := graphmodel.New(idGen.nextID())

	mapped := make(map[int]int, len(subset))
	activitySet := make(map[int]struct{}, len(subset))
	for _, v := range subset {
		activitySet[v.ID] = struct{}{}
	}

	// Pass 1: activity vertices, so every edge target lookup below always
	// finds its mapped id already populated.
	for _, v := range subset {
		mapped[v.ID] = c.CreateVertex(v.Label, v.Type)
	}

	// Pass 2: object vertices (created on first sight) and every edge that
	// belongs in the candidate.
	for _, v := range subset {
		for _, e := range v.Edges {
			target := g.Vertex(e.To)
			switch {
			case cfg.isObjectType(target.Type):
				to, ok := mapped[target.ID]
				if !ok {
					to = c.CreateVertex(target.Label, target.Type)
					mapped[target.ID] = to
				}
				c.AddEdge(mapped[v.ID], to, e.Label)
			case isIn(activitySet, target.ID):
				c.AddEdge(mapped[v.ID], mapped[target.ID], e.Label)
			default:
				// Edge leaves the candidate's vertex set entirely: dropped.
			}
		}
	}

	return c
}

func isIn(set map[int]struct{}, id int) bool {
	_, ok := set[id]
	return ok
}
