package dotfile

import (
	"fmt"
	"io"

	"github.com/jameshanlon/netlist-paths/core"
)

// Write renders g as a Graphviz digraph to w. Soft-deleted vertices are
// omitted, along with any edge touching one, so the rendering always
// matches what queries currently see.
func Write(w io.Writer, g *core.Graph) error {
	if _, err := io.WriteString(w, "digraph netlist {\n"); err != nil {
		return err
	}

	deleted := make(map[core.VertexID]bool)
	for _, id := range g.AllVertices() {
		v := g.Vertex(id)
		if v.Deleted {
			deleted[id] = true
			continue
		}
		label := v.Name
		if label == "" {
			label = v.Kind.String()
		}
		if _, err := fmt.Fprintf(w, "%d [label=%q, type=%q]\n", id, label, v.Kind.String()); err != nil {
			return err
		}
	}

	for _, id := range g.AllVertices() {
		if deleted[id] {
			continue
		}
		for _, e := range g.OutEdges(id) {
			if deleted[e.To] {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d -> %d;\n", e.From, e.To); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}
