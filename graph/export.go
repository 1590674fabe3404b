package graph

import (
	"fmt"
	"sort"
	"strings"
)

// ToDOT returns the graph in Graphviz DOT format for offline
// visualization. Nodes are emitted in sorted id order so the output is
// stable across runs.
func (g *Graph) ToDOT() string {
	var w strings.Builder
	w.WriteString("digraph infragraph {\n")
	w.WriteString("  rankdir=LR;\n")
	w.WriteString("  node [shape=box, style=filled, fontname=\"Arial\"];\n")

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		n := g.Nodes[id]
		color := "lightgrey"
		switch n.Type {
		case NodeTypeCable:
			color = "lightblue"
		case NodeTypePipeline:
			color = "salmon"
		case NodeTypePort:
			color = "lightyellow"
		case NodeTypeChokepoint:
			color = "orange"
		case NodeTypeCountry:
			color = "lightgreen"
		}
		label := fmt.Sprintf("%s\\n(%s)", n.Name, n.Type)
		w.WriteString(fmt.Sprintf("  %q [label=%q, fillcolor=%q];\n", n.ID, label, color))
	}

	for _, e := range g.Edges {
		w.WriteString(fmt.Sprintf("  %q -> %q [label=%q, weight=%.2f];\n", e.From, e.To, e.Type, e.Strength))
	}

	w.WriteString("}\n")
	return w.String()
}
