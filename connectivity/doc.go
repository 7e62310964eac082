// Package connectivity implements the connectivity oracle (C2): it decides
// whether an ordered set of vertices from one graphmodel.Graph induces a
// weakly connected subgraph.
//
// The algorithm is a flood fill seeded at the first vertex: repeatedly scan
// the induced edges, firing any whose endpoint is already visited, until
// either every vertex is visited or a full pass fires nothing. This is
// O(|V|*|E|) worst case, which is acceptable because |V| here is tiny
// (bounded by max_vertices, typically <= 6) — see candidates.Config.
package connectivity
