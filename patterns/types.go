package patterns

import "github.com/katalvlaran/cpdmine/graphmodel"

// PatternResult is one mined pattern: a representative candidate graph plus
// its cross-graph support counts. Pattern.ID is whatever id package
// candidates assigned it; package pipeline reassigns final, contiguous ids
// once the full pattern set is known.
type PatternResult struct {
	Pattern          *graphmodel.Graph
	FrequencyExact   int
	FrequencyRelaxed int
}

// Render produces the pattern's text representation (spec §6), with its
// support counts filled in.
func (r PatternResult) Render() string {
	return r.Pattern.Render(&r.FrequencyExact, &r.FrequencyRelaxed)
}
