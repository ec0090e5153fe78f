package layout

// assignColumns gives every node a horizontal slot within its level.
// Within a level, columns follow element insertion order - no crossing
// minimization is attempted. Ties between siblings therefore resolve to
// the order elements appeared in the input, which keeps the output stable
// across runs. This simplicity is a documented limitation of the engine.
func assignColumns(g *graph) {
	next := make(map[int]int)
	for _, id := range g.order {
		n := g.nodes[id]
		n.Column = next[n.Level]
		next[n.Level]++
	}
}

// levelOrder returns node IDs grouped by level in ascending level order,
// each group sorted by column. Levels need not be consecutive.
func levelOrder(g *graph) [][]string {
	if g.len() == 0 {
		return nil
	}

	maxLevel := 0
	for _, id := range g.order {
		if l := g.nodes[id].Level; l > maxLevel {
			maxLevel = l
		}
	}

	groups := make([][]string, maxLevel+1)
	for _, id := range g.order {
		n := g.nodes[id]
		groups[n.Level] = append(groups[n.Level], id)
	}
	return groups
}
