package layout

// assignLevels sets a level (vertical rank) on every node, breadth-first
// from the start nodes.
//
// A neighbor's level is raised to parentLevel+1 whenever that is higher than
// its current assignment, so a node always ends up below every predecessor
// that was processed while it sat on or behind the frontier. Nodes are
// enqueued at most once: a node that was already dequeued keeps whatever
// level updates later-dequeued predecessors push onto it, but its own
// children are not revisited. In multi-parent diamond graphs this can leave
// a level one short of the strict longest path. That approximation matches
// the observable behavior this engine is specified against and is kept
// deliberately; see DESIGN.md.
//
// Nodes unreachable from every start node (disconnected fragments) keep
// level 0.
func assignLevels(g *graph) {
	starts := g.starts()

	queue := make([]string, 0, len(starts))
	visited := make(map[string]bool, g.len())

	for _, id := range starts {
		n := g.nodes[id]
		n.Level = 0
		n.leveled = true
		visited[id] = true
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		level := g.nodes[curr].Level

		for _, childID := range g.nodes[curr].Outgoing {
			child := g.nodes[childID]
			if candidate := level + 1; !child.leveled || child.Level < candidate {
				child.Level = candidate
				child.leveled = true
			}
			if !visited[childID] {
				visited[childID] = true
				queue = append(queue, childID)
			}
		}
	}

	for _, id := range g.order {
		if n := g.nodes[id]; !n.leveled {
			n.Level = 0
			n.leveled = true
		}
	}
}
