package layout

import (
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

func el(id string, t bpmn.ElementType) bpmn.Element {
	return bpmn.Element{ID: id, Type: t}
}

func flow(id, source, target string) bpmn.Flow {
	return bpmn.Flow{ID: id, Source: source, Target: target}
}

func TestBuildGraphExcludesBoundaryEvents(t *testing.T) {
	elements := []bpmn.Element{
		el("task", bpmn.TypeTask),
		{ID: "timer", Type: bpmn.TypeBoundaryEvent, AttachedTo: "task"},
	}

	g := buildGraph(elements, nil)

	if g.len() != 1 {
		t.Fatalf("got %d nodes, want 1", g.len())
	}
	if _, ok := g.nodes["timer"]; ok {
		t.Error("boundary event should not be a graph node")
	}
}

func TestBuildGraphDropsDanglingFlows(t *testing.T) {
	elements := []bpmn.Element{
		el("a", bpmn.TypeTask),
		el("b", bpmn.TypeTask),
	}
	flows := []bpmn.Flow{
		flow("f1", "a", "b"),
		flow("f2", "a", "ghost"),
		flow("f3", "ghost", "b"),
	}

	g := buildGraph(elements, flows)

	if got := len(g.nodes["a"].Outgoing); got != 1 {
		t.Errorf("a.Outgoing = %d, want 1", got)
	}
	if got := len(g.nodes["b"].Incoming); got != 1 {
		t.Errorf("b.Incoming = %d, want 1", got)
	}
}

func TestBuildGraphDuplicateIDs(t *testing.T) {
	elements := []bpmn.Element{
		el("a", bpmn.TypeTask),
		el("a", bpmn.TypeUserTask),
	}

	g := buildGraph(elements, nil)

	if g.len() != 1 {
		t.Fatalf("got %d nodes, want 1", g.len())
	}
	// First declaration wins
	if g.nodes["a"].Element.Type != bpmn.TypeTask {
		t.Errorf("got type %s, want task", g.nodes["a"].Element.Type)
	}
}

func TestStartsInsertionOrder(t *testing.T) {
	elements := []bpmn.Element{
		el("s2", bpmn.TypeStartEvent),
		el("mid", bpmn.TypeTask),
		el("s1", bpmn.TypeStartEvent),
	}
	flows := []bpmn.Flow{flow("f1", "s2", "mid")}

	g := buildGraph(elements, flows)
	starts := g.starts()

	if len(starts) != 2 {
		t.Fatalf("got %d starts, want 2", len(starts))
	}
	if starts[0] != "s2" || starts[1] != "s1" {
		t.Errorf("starts = %v, want [s2 s1]", starts)
	}
}

func TestStartsPureCycle(t *testing.T) {
	elements := []bpmn.Element{
		el("a", bpmn.TypeTask),
		el("b", bpmn.TypeTask),
	}
	flows := []bpmn.Flow{
		flow("f1", "a", "b"),
		flow("f2", "b", "a"),
	}

	g := buildGraph(elements, flows)
	starts := g.starts()

	if len(starts) != 1 || starts[0] != "a" {
		t.Errorf("starts = %v, want [a] (first inserted node)", starts)
	}
}
