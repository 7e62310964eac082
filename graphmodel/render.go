package graphmodel

import (
	"fmt"
	"strings"
)

// Render produces the pattern text representation described in spec §6:
//
//	t # <id> * <frequencyExact> / <frequencyRelaxed>
//	v <vid> <label> <type>     (one per vertex)
//	e <from> <to> <e_label>    (one per edge)
//
// frequencyExact and frequencyRelaxed are optional; when both are nil, the
// header line is simply "t # <id>" with no "* X / Y" suffix, matching the
// input graph file's own "t # <id>" record shape. This method only builds
// the string — writing it to a file or to stdout is the output serializer's
// job, out of scope for this module.
func (g *Graph) Render(frequencyExact, frequencyRelaxed *int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "t # %d", g.ID)
	if frequencyExact != nil {
		fmt.Fprintf(&b, " * %d", *frequencyExact)
	}
	if frequencyRelaxed != nil {
		fmt.Fprintf(&b, " / %d", *frequencyRelaxed)
	}

	lines := make([]string, 0, 1+2*len(g.vertices))
	lines = append(lines, b.String())
	for i := range g.vertices {
		v := &g.vertices[i]
		lines = append(lines, fmt.Sprintf("v %d %d %d", v.ID, v.Label, v.Type))
	}
	for i := range g.vertices {
		for _, e := range g.vertices[i].Edges {
			lines = append(lines, fmt.Sprintf("e %d %d %d", e.From, e.To, e.Label))
		}
	}
	return strings.Join(lines, "\n")
}
