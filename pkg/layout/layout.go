package layout

import "github.com/flowsketch/flowsketch/pkg/bpmn"

// Node is the final per-element layout output.
type Node struct {
	ID      string       `json:"id" bson:"id"`
	Element bpmn.Element `json:"element" bson:"element"`
	Bounds  Bounds       `json:"bounds" bson:"bounds"`
	Level   int          `json:"level" bson:"level"`
	Column  int          `json:"column" bson:"column"`
}

// Edge is the final per-flow layout output. Waypoints holds between two and
// four points; the first is the source attachment point and the last the
// target attachment point.
type Edge struct {
	ID        string    `json:"id" bson:"id"`
	Flow      bpmn.Flow `json:"flow" bson:"flow"`
	Waypoints []Point   `json:"waypoints" bson:"waypoints"`
}

// Layout is the complete geometric result for one process. TotalWidth and
// TotalHeight are the tight bounding box over all nodes relative to the
// layout origin, recomputed from scratch whenever nodes change - never
// patched incrementally.
//
// A Layout has no lifetime beyond the [Calculate] call that produced it;
// there is no shared state between invocations, so concurrent calls for
// different processes need no synchronization.
type Layout struct {
	Nodes       map[string]*Node `json:"nodes" bson:"nodes"`
	Edges       map[string]*Edge `json:"edges" bson:"edges"`
	Lanes       []LaneLayout     `json:"lanes,omitempty" bson:"lanes,omitempty"`
	TotalWidth  float64          `json:"totalWidth" bson:"total_width"`
	TotalHeight float64          `json:"totalHeight" bson:"total_height"`
}

// Calculate computes a full layout for the process at origin (0, 0):
// levels, columns, bounds, subprocess sizing, lane bands, boundary events,
// and connector waypoints. It is a pure function of its inputs - the
// process is only read, and every anomaly in it (dangling flows, unknown
// element types, missing lane refs, cycles, empty input) degrades to a
// best-effort geometric result rather than an error.
func Calculate(p bpmn.Process, cfg Config) *Layout {
	return calculate(p.Elements, p.Flows, p.Lanes, 0, 0, 0, cfg)
}

func calculate(elements []bpmn.Element, flows []bpmn.Flow, lanes []bpmn.Lane, startX, startY float64, depth int, cfg Config) *Layout {
	g := buildGraph(elements, flows)
	assignLevels(g)
	assignColumns(g)

	bounds := computeBounds(g, startX, startY, cfg)

	inner := sizeSubprocesses(g, bounds, depth, cfg)

	laneLayouts, _ := computeLanes(lanes, bounds, startY, cfg)
	constrainToLanes(laneLayouts, bounds, cfg)

	placeBoundaryEvents(elements, bounds, cfg)

	l := &Layout{
		Nodes: make(map[string]*Node, len(bounds)),
		Edges: make(map[string]*Edge, len(flows)),
		Lanes: laneLayouts,
	}

	for _, e := range elements {
		b, ok := bounds[e.ID]
		if !ok {
			continue
		}
		ln := &Node{ID: e.ID, Element: e, Bounds: b}
		if n, ok := g.nodes[e.ID]; ok {
			ln.Level = n.Level
			ln.Column = n.Column
		}
		l.Nodes[ln.ID] = ln
	}

	for _, f := range flows {
		src, okS := bounds[f.Source]
		dst, okD := bounds[f.Target]
		if !okS || !okD {
			continue
		}
		l.Edges[f.ID] = &Edge{ID: f.ID, Flow: f, Waypoints: route(src, dst)}
	}

	mergeInner(l, inner, cfg)
	recomputeTotals(l, startX, startY)

	return l
}

// sizeSubprocesses recursively lays out the children of every subprocess
// node and resizes the subprocess to fit them plus padding. Positions are
// untouched - only width and height change. The computed inner layouts are
// returned keyed by subprocess ID so the caller can merge them once the
// subprocess's final position is known.
//
// Recursion past cfg.MaxDepth falls back to the minimum subprocess size,
// as does a subprocess with no nested content.
func sizeSubprocesses(g *graph, bounds map[string]Bounds, depth int, cfg Config) map[string]*Layout {
	inner := make(map[string]*Layout)

	for _, id := range g.order {
		e := g.nodes[id].Element
		if !e.Type.IsSubProcess() {
			continue
		}
		b := bounds[id]

		if !e.HasChildren() || depth+1 >= cfg.MaxDepth {
			b.Width = cfg.MinSubprocessSize.Width
			b.Height = cfg.MinSubprocessSize.Height
			bounds[id] = b
			continue
		}

		il := calculate(e.Elements, e.Flows, nil, 0, 0, depth+1, cfg)
		inner[id] = il

		b.Width = max(il.TotalWidth+2*cfg.SubprocessPadding, cfg.MinSubprocessSize.Width)
		b.Height = max(il.TotalHeight+2*cfg.SubprocessPadding, cfg.MinSubprocessSize.Height)
		bounds[id] = b
	}

	return inner
}

// mergeInner translates each subprocess's inner layout to its parent's
// final position (plus padding) and folds its nodes and edges into l.
func mergeInner(l *Layout, inner map[string]*Layout, cfg Config) {
	for id, il := range inner {
		parent, ok := l.Nodes[id]
		if !ok {
			continue
		}

		shifted := Offset(il, parent.Bounds.X+cfg.SubprocessPadding, parent.Bounds.Y+cfg.SubprocessPadding)
		for nid, n := range shifted.Nodes {
			l.Nodes[nid] = n
		}
		for eid, e := range shifted.Edges {
			l.Edges[eid] = e
		}
	}
}

// recomputeTotals sets the tight bounding box over all nodes, measured from
// the layout origin. An empty layout has zero totals.
func recomputeTotals(l *Layout, startX, startY float64) {
	var maxRight, maxBottom float64
	found := false
	for _, n := range l.Nodes {
		if !found || n.Bounds.Right() > maxRight {
			maxRight = n.Bounds.Right()
		}
		if !found || n.Bounds.Bottom() > maxBottom {
			maxBottom = n.Bounds.Bottom()
		}
		found = true
	}

	if !found {
		l.TotalWidth, l.TotalHeight = 0, 0
		return
	}
	l.TotalWidth = maxRight - startX
	l.TotalHeight = maxBottom - startY
}
