package matching

import (
	"math"

	"github.com/katalvlaran/cpdmine/graphmodel"
)

// exactSaturationEpsilon is how close a cosine similarity must be to 1.0
// before Cosine escalates to a VF2 confirmation (spec §4.3: epsilon ~ 1e-8).
const exactSaturationEpsilon = 1e-8

// Cosine matches two graphs by the cosine similarity of their vertex-label
// and edge-signature histograms, escalating to VF2 when that similarity
// saturates at (effectively) 1.0 — two graphs can share identical
// histograms without being isomorphic, so histogram similarity alone can
// never be trusted to mean "exact".
type Cosine struct {
	// Alpha weights the vertex-histogram similarity against the
	// edge-histogram similarity: s = Alpha*sv + (1-Alpha)*se. Must be in [0,1].
	Alpha float64
	// Tau is the minimum similarity for a RelaxedMatch. Must be in [0,1].
	Tau float64
}

var _ Matcher = Cosine{}

// Distance returns the combined cosine similarity s in [0,1].
func (c Cosine) Distance(a, b *graphmodel.Graph) float64 {
	sv := cosineSimilarity(a.VertexLabelHistogram(), b.VertexLabelHistogram())
	se := cosineSimilarity(a.EdgeSignatureHistogram(), b.EdgeSignatureHistogram())
	return c.Alpha*sv + (1-c.Alpha)*se
}

// Match classifies a and b per spec §4.3: similarity >= 1-epsilon escalates
// to VF2 (confirming ExactMatch or falling back to RelaxedMatch);
// similarity >= Tau is a RelaxedMatch; anything else is NoMatch.
func (c Cosine) Match(a, b *graphmodel.Graph) MatchResult {
	s := c.Distance(a, b)
	if s >= 1-exactSaturationEpsilon {
		if VF2Isomorphic(a, b) {
			return ExactMatch
		}
		return RelaxedMatch
	}
	if s >= c.Tau {
		return RelaxedMatch
	}
	return NoMatch
}

// cosineSimilarity computes <u,v> / (||u|| * ||v||) over the union of keys
// present in either histogram, treating an absent key as zero. Returns 0 if
// either vector's norm is zero (including when both maps are empty).
func cosineSimilarity[K comparable](one, other map[K]int) float64 {
	seen := make(map[K]struct{}, len(one)+len(other))
	for k := range one {
		seen[k] = struct{}{}
	}
	for k := range other {
		seen[k] = struct{}{}
	}

	var dot, normOne, normOther float64
	for k := range seen {
		v1 := float64(one[k])
		v2 := float64(other[k])
		dot += v1 * v2
		normOne += v1 * v1
		normOther += v2 * v2
	}

	if normOne == 0 || normOther == 0 {
		return 0
	}
	return dot / (math.Sqrt(normOne) * math.Sqrt(normOther))
}
