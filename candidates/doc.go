// Package candidates implements candidate subgraph enumeration (C3): the
// FullyConnected strategy of spec §4.2. Given a set of input graphs, it
// enumerates, per input graph, every connected subset of "activity"
// vertices within a configured size range, augmented by adjacent "object"
// vertices, and returns one fresh candidate graphmodel.Graph per subset.
//
// Enumeration across input graphs runs in parallel (golang.org/x/sync/errgroup);
// within a single input graph, enumeration is strictly sequential and
// deterministic (n ascending, then combination order ascending). Candidate
// ids are drawn from a single process-wide, mutex-guarded counter shared by
// every worker, so ids across the whole run are unique and monotonic, even
// though which worker claims which id is not deterministic.
package candidates
