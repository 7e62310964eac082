// Package patterns implements cross-graph frequency counting and
// de-duplication (C5): given the per-input-graph candidate lists produced by
// package candidates, it groups candidates into patterns under a chosen
// matching.Matcher and counts, for each pattern, the number of distinct
// input graphs containing an exact occurrence (FrequencyExact) and the
// number containing at least a relaxed occurrence (FrequencyRelaxed). A
// candidate is kept if it clears *either* of two independent support
// thresholds: minSupportExact on FrequencyExact or minSupportRelaxed on
// FrequencyRelaxed — a pattern that never reaches exact-match frequency but
// recurs often enough under the relaxed metric is still worth reporting.
//
// Two equivalent strategies are provided: Naive runs single-threaded; Parallel
// fans the per-graph occurrence check out across an errgroup.Group, one
// goroutine per input graph, while sharing a single pairwise match-result
// cache so repeated comparisons of the same two candidate ids are never
// recomputed. Both strategies produce the same patterns in the same order
// for the same input, modulo which already-matched candidate happens to be
// consumed first — de-duplication here is best-effort: it consults only the
// cache entries already populated by work done so far, it never forces extra
// comparisons purely to decide whether two candidates should collapse into
// one pattern.
package patterns
