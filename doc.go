// Package cpdmine mines frequent collaboration patterns from a database of
// labeled directed multigraphs.
//
// 🚀 What is cpdmine?
//
//	A small, focused pipeline that takes a set of input graphs — vertices
//	carry a (label, type) pair, edges carry a label — and discovers connected
//	subgraph patterns that recur across many of them, either as exact
//	isomorphic copies or as structurally similar matches under a chosen
//	similarity metric.
//
// The pipeline has three stages (C3, C4, C5) plus the packages they build
// on and the driver around them, one subpackage each:
//
//	graphmodel/   — the in-memory Graph/Vertex/Edge model and its derived caches
//	connectivity/ — the connectivity oracle used during candidate enumeration
//	candidates/   — enumeration of connected activity-vertex subgraphs (C3)
//	matching/     — pairwise graph comparison: cosine, VF2, GED+Hungarian (C4)
//	patterns/     — cross-graph frequency counting and de-duplication (C5)
//	pipeline/     — orchestration and final pattern-id assignment (C6)
//
// Out of scope: the text graph-database parser, the command-line front end,
// and the pattern text serializer are external collaborators described only
// at their interface (see SPEC_FULL.md).
//
//	go get github.com/katalvlaran/cpdmine
package cpdmine
