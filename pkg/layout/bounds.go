package layout

// computeBounds converts (level, column) grid positions into concrete
// bounds. Levels stack vertically from startY, each advancing the cursor by
// the tallest element in the level plus the vertical spacing. Within a
// level, elements are placed left to right from startX, each advancing the
// cursor by its own width plus the horizontal spacing. Elements in the same
// level can therefore never overlap horizontally.
func computeBounds(g *graph, startX, startY float64, cfg Config) map[string]Bounds {
	bounds := make(map[string]Bounds, g.len())

	y := startY
	for _, level := range levelOrder(g) {
		if len(level) == 0 {
			continue
		}

		x := startX
		maxHeight := 0.0
		for _, id := range level {
			size := cfg.SizeOf(g.nodes[id].Element.Type)
			bounds[id] = Bounds{X: x, Y: y, Width: size.Width, Height: size.Height}
			x += size.Width + cfg.HorizontalSpacing
			if size.Height > maxHeight {
				maxHeight = size.Height
			}
		}

		y += maxHeight + cfg.VerticalSpacing
	}

	return bounds
}
