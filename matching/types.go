package matching

import "github.com/katalvlaran/cpdmine/graphmodel"

// MatchResult classifies the outcome of comparing two graphs.
type MatchResult int

const (
	// NoMatch means the two graphs do not meet the configured threshold.
	NoMatch MatchResult = iota
	// RelaxedMatch means the graphs meet the similarity threshold of the
	// chosen metric without being exactly isomorphic.
	RelaxedMatch
	// ExactMatch means the graphs are isomorphic under the (label,type)
	// and e_label equality predicates.
	ExactMatch
)

// String renders a MatchResult for logging and test failure messages.
func (r MatchResult) String() string {
	switch r {
	case ExactMatch:
		return "ExactMatch"
	case RelaxedMatch:
		return "RelaxedMatch"
	default:
		return "NoMatch"
	}
}

// Matcher compares two graphs under a fixed metric and threshold, chosen
// once for the lifetime of a mining run. Implementations never fail: an
// empty graph is a valid input, not an error condition (spec §4.3).
type Matcher interface {
	// Match classifies the pair.
	Match(a, b *graphmodel.Graph) MatchResult
	// Distance returns the metric's raw (dis)similarity value; smaller is
	// more similar for GED, larger is more similar for Cosine. VF2 reports
	// 0 for isomorphic pairs and 1 otherwise, since it has no native scalar
	// distance.
	Distance(a, b *graphmodel.Graph) float64
}
