package layout

import (
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

func TestAssignColumnsInsertionOrder(t *testing.T) {
	// split fans out to b, a, c declared in that order; columns follow
	// declaration, not ID order.
	g := buildGraph([]bpmn.Element{
		el("split", bpmn.TypeParallelGateway),
		el("b", bpmn.TypeTask),
		el("a", bpmn.TypeTask),
		el("c", bpmn.TypeTask),
	}, []bpmn.Flow{
		flow("f1", "split", "b"),
		flow("f2", "split", "a"),
		flow("f3", "split", "c"),
	})
	assignLevels(g)
	assignColumns(g)

	want := map[string]int{"b": 0, "a": 1, "c": 2}
	for id, col := range want {
		if got := g.nodes[id].Column; got != col {
			t.Errorf("column(%s) = %d, want %d", id, got, col)
		}
	}
	if got := g.nodes["split"].Column; got != 0 {
		t.Errorf("column(split) = %d, want 0", got)
	}
}

func TestLevelOrderGrouping(t *testing.T) {
	g := buildGraph([]bpmn.Element{
		el("start", bpmn.TypeStartEvent),
		el("a", bpmn.TypeTask),
		el("b", bpmn.TypeTask),
	}, []bpmn.Flow{
		flow("f1", "start", "a"),
		flow("f2", "start", "b"),
	})
	assignLevels(g)
	assignColumns(g)

	groups := levelOrder(g)
	if len(groups) != 2 {
		t.Fatalf("got %d levels, want 2", len(groups))
	}
	if len(groups[0]) != 1 || groups[0][0] != "start" {
		t.Errorf("level 0 = %v, want [start]", groups[0])
	}
	if len(groups[1]) != 2 || groups[1][0] != "a" || groups[1][1] != "b" {
		t.Errorf("level 1 = %v, want [a b]", groups[1])
	}
}

func TestLevelOrderEmptyGraph(t *testing.T) {
	g := buildGraph(nil, nil)
	if groups := levelOrder(g); groups != nil {
		t.Errorf("levelOrder(empty) = %v, want nil", groups)
	}
}
