// Package graphmodel defines the in-memory directed multigraph used
// throughout cpdmine: Vertex, Edge, and Graph, plus the three derived
// caches (vertex-label histogram, edge-signature histogram, and a VF2-ready
// adjacency view) that the matching stage relies on.
//
// Graphs are write-once: a Graph is built by a single goroutine (the parser,
// or the candidate generator), and becomes immutable the moment its builder
// is done with it. There is no mutex guarding Vertex/Edge storage, because
// nothing ever mutates a Graph concurrently with a reader — only the three
// derived caches are computed lazily, and they are computed at most once
// behind a sync.Once, matching the "publish once, read many" discipline the
// original implementation expressed with Rust's std::sync::OnceLock.
//
// Errors:
//
//	ErrEmptyVertexSet - an operation required at least one vertex.
package graphmodel
