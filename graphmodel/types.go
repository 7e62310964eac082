package graphmodel

import "errors"

// ErrEmptyVertexSet indicates an operation that requires at least one
// vertex was given none (e.g. a candidate induced over an empty subset).
var ErrEmptyVertexSet = errors.New("graphmodel: empty vertex set")

// Edge is a directed, labeled connection stored on its source Vertex.
//
// ID is unique only within the owning Vertex's edge list (it is the edge's
// position at construction time), not graph-wide. From always equals the
// id of the owning Vertex; To references another vertex in the same Graph.
type Edge struct {
	ID    int    // local id, unique within the owning vertex's edge list
	From  int    // owning vertex id
	To    int    // target vertex id, same graph
	Label uint64 // e_label
}

// Vertex is a node of a Graph: a dense, 0-based id, a (Label, Type) pair,
// and its ordered outgoing edges.
type Vertex struct {
	ID     int
	Label  uint64
	Type   uint64
	Edges  []Edge
}

// Equivalent reports whether v and other carry the same (Label, Type) pair.
// Two vertices are equivalent independent of which graph or id they belong to.
func (v *Vertex) Equivalent(other *Vertex) bool {
	return v.Label == other.Label && v.Type == other.Type
}

// pushEdge appends a new outgoing edge to to with the given label, assigning
// it the next local edge id. It is unexported: only graph construction
// (parsing or candidate generation) may grow a Vertex's edge list.
func (v *Vertex) pushEdge(to int, label uint64) {
	v.Edges = append(v.Edges, Edge{ID: len(v.Edges), From: v.ID, To: to, Label: label})
}
