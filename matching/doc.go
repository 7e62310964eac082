// Package matching implements the graph matcher (C4): three interchangeable
// pairwise comparators, all satisfying the same Matcher interface, returning
// one of {ExactMatch, RelaxedMatch, NoMatch} (spec §4.3):
//
//	Cosine — vertex/edge histogram cosine similarity, escalating to VF2 when
//	         similarity saturates, so "exact" never means merely "same
//	         histograms".
//	VF2    — exact isomorphism only; RelaxedMatch is never produced.
//	GED    — an approximate, positional graph edit distance solved via the
//	         Hungarian assignment algorithm (package-internal, standard
//	         library only: no assignment/Hungarian solver exists anywhere
//	         in the example pack this module was grounded on), escalating to
//	         VF2 at distance 0 for the same reason Cosine escalates.
//
// A Matcher is a pure function of its two graph arguments given its fixed
// configuration: no matcher variant ever fails, per spec §4.3.
package matching
