package layout

// Offset returns a copy of l translated by (dx, dy): every node's bounds
// and every edge waypoint shift identically. Totals are extents and are
// translation-invariant, so they carry over unchanged. Lane bands shift
// with everything else.
//
// Offsetting by (dx, dy) and then by (-dx, -dy) reproduces the original
// layout exactly.
func Offset(l *Layout, dx, dy float64) *Layout {
	out := &Layout{
		Nodes:       make(map[string]*Node, len(l.Nodes)),
		Edges:       make(map[string]*Edge, len(l.Edges)),
		Lanes:       make([]LaneLayout, len(l.Lanes)),
		TotalWidth:  l.TotalWidth,
		TotalHeight: l.TotalHeight,
	}

	for id, n := range l.Nodes {
		shifted := *n
		shifted.Bounds.X += dx
		shifted.Bounds.Y += dy
		out.Nodes[id] = &shifted
	}

	for id, e := range l.Edges {
		shifted := *e
		shifted.Waypoints = make([]Point, len(e.Waypoints))
		for i, p := range e.Waypoints {
			shifted.Waypoints[i] = Point{X: p.X + dx, Y: p.Y + dy}
		}
		out.Edges[id] = &shifted
	}

	for i, lane := range l.Lanes {
		lane.Y += dy
		out.Lanes[i] = lane
	}

	return out
}
