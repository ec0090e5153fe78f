package layout

// route computes the waypoint polyline connecting two bounds. The connector
// exits at the source's right-center and enters at the target's left-center.
//
// When the target lies strictly to the right of the source the path is a
// straight two-point segment. In every other arrangement - target below,
// above, or horizontally overlapping - the path bends at the horizontal
// midpoint between the two attachment points, producing a four-point
// right-angle route. The router is deliberately unaware of other shapes;
// it does not avoid anything sitting between its endpoints.
func route(source, target Bounds) []Point {
	exit := source.RightCenter()
	entry := target.LeftCenter()

	if target.X > source.Right() {
		return []Point{exit, entry}
	}

	midX := (exit.X + entry.X) / 2
	return []Point{
		exit,
		{X: midX, Y: exit.Y},
		{X: midX, Y: entry.Y},
		entry,
	}
}
