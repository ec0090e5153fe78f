package layout

import "github.com/flowsketch/flowsketch/pkg/bpmn"

// graphNode wraps one element with its computed adjacency and grid position.
// Nodes live in a single mutable arena ([graph]) that is created fresh per
// layout invocation, annotated in place by the level and column passes, and
// discarded once bounds are computed.
type graphNode struct {
	Element  bpmn.Element
	Incoming []string
	Outgoing []string

	Level   int
	Column  int
	leveled bool
}

// graph is the adjacency structure built from an element and flow list.
// Element insertion order is kept explicitly so that every downstream pass
// is deterministic - no map-iteration ordering leaks into the output.
type graph struct {
	nodes map[string]*graphNode
	order []string
}

// buildGraph converts a flat element list and flow list into a graph.
// Boundary events are excluded - they are positioned against their host
// after the grid layout, not placed on it. Flows with a missing source or
// target are dropped without error.
func buildGraph(elements []bpmn.Element, flows []bpmn.Flow) *graph {
	g := &graph{nodes: make(map[string]*graphNode, len(elements))}

	for _, e := range elements {
		if e.IsBoundaryEvent() {
			continue
		}
		if _, exists := g.nodes[e.ID]; exists {
			continue
		}
		g.nodes[e.ID] = &graphNode{Element: e}
		g.order = append(g.order, e.ID)
	}

	for _, f := range flows {
		src, okS := g.nodes[f.Source]
		dst, okD := g.nodes[f.Target]
		if !okS || !okD {
			continue
		}
		src.Outgoing = append(src.Outgoing, f.Target)
		dst.Incoming = append(dst.Incoming, f.Source)
	}

	return g
}

// len returns the number of nodes in the graph.
func (g *graph) len() int { return len(g.nodes) }

// starts returns the IDs of all nodes without incoming edges, in insertion
// order. If no such node exists (a pure cycle), the first inserted node is
// returned as the sole synthetic start.
func (g *graph) starts() []string {
	var starts []string
	for _, id := range g.order {
		if len(g.nodes[id].Incoming) == 0 {
			starts = append(starts, id)
		}
	}
	if len(starts) == 0 && len(g.order) > 0 {
		starts = []string{g.order[0]}
	}
	return starts
}
