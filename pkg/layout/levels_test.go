package layout

import (
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

func levels(g *graph) map[string]int {
	out := make(map[string]int, g.len())
	for id, n := range g.nodes {
		out[id] = n.Level
	}
	return out
}

func TestAssignLevelsLinearChain(t *testing.T) {
	g := buildGraph([]bpmn.Element{
		el("start", bpmn.TypeStartEvent),
		el("task", bpmn.TypeTask),
		el("end", bpmn.TypeEndEvent),
	}, []bpmn.Flow{
		flow("f1", "start", "task"),
		flow("f2", "task", "end"),
	})

	assignLevels(g)

	want := map[string]int{"start": 0, "task": 1, "end": 2}
	for id, level := range want {
		if got := g.nodes[id].Level; got != level {
			t.Errorf("level(%s) = %d, want %d", id, got, level)
		}
	}
}

func TestAssignLevelsBranchAndJoin(t *testing.T) {
	// start → split → {a, b} → join
	g := buildGraph([]bpmn.Element{
		el("start", bpmn.TypeStartEvent),
		el("split", bpmn.TypeExclusiveGateway),
		el("a", bpmn.TypeTask),
		el("b", bpmn.TypeTask),
		el("join", bpmn.TypeExclusiveGateway),
	}, []bpmn.Flow{
		flow("f1", "start", "split"),
		flow("f2", "split", "a"),
		flow("f3", "split", "b"),
		flow("f4", "a", "join"),
		flow("f5", "b", "join"),
	})

	assignLevels(g)

	if g.nodes["a"].Level != 2 || g.nodes["b"].Level != 2 {
		t.Errorf("branch levels = %d/%d, want 2/2", g.nodes["a"].Level, g.nodes["b"].Level)
	}
	if got := g.nodes["join"].Level; got != 3 {
		t.Errorf("level(join) = %d, want 3", got)
	}
}

func TestAssignLevelsSkipConnection(t *testing.T) {
	// start → a → b, plus a direct start → b edge. The longer path wins
	// because b's level is raised when a is dequeued after start.
	g := buildGraph([]bpmn.Element{
		el("start", bpmn.TypeStartEvent),
		el("a", bpmn.TypeTask),
		el("b", bpmn.TypeTask),
	}, []bpmn.Flow{
		flow("f1", "start", "a"),
		flow("f2", "start", "b"),
		flow("f3", "a", "b"),
	})

	assignLevels(g)

	if got := g.nodes["b"].Level; got != 2 {
		t.Errorf("level(b) = %d, want 2", got)
	}
}

func TestAssignLevelsDisconnectedFragment(t *testing.T) {
	g := buildGraph([]bpmn.Element{
		el("start", bpmn.TypeStartEvent),
		el("task", bpmn.TypeTask),
		el("orphan", bpmn.TypeTask),
	}, []bpmn.Flow{
		flow("f1", "start", "task"),
	})

	assignLevels(g)

	if got := g.nodes["orphan"].Level; got != 0 {
		t.Errorf("level(orphan) = %d, want 0", got)
	}
	if !g.nodes["orphan"].leveled {
		t.Error("orphan should be marked leveled")
	}
}

func TestAssignLevelsCycleTerminates(t *testing.T) {
	g := buildGraph([]bpmn.Element{
		el("a", bpmn.TypeTask),
		el("b", bpmn.TypeTask),
		el("c", bpmn.TypeTask),
	}, []bpmn.Flow{
		flow("f1", "a", "b"),
		flow("f2", "b", "c"),
		flow("f3", "c", "a"),
	})

	// Must not hang; a is the synthetic start. The back edge c → a raises
	// a's level after it has been dequeued, and the enqueue-once guard
	// stops the walk there.
	assignLevels(g)

	got := levels(g)
	if got["a"] != 3 || got["b"] != 1 || got["c"] != 2 {
		t.Errorf("cycle levels = %v, want a:3 b:1 c:2", got)
	}
}
