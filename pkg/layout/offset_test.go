package layout

import (
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

func TestOffsetTranslates(t *testing.T) {
	l := &Layout{
		Nodes: map[string]*Node{
			"task": {ID: "task", Bounds: Bounds{X: 10, Y: 20, Width: 100, Height: 80}},
		},
		Edges: map[string]*Edge{
			"f1": {ID: "f1", Waypoints: []Point{{X: 0, Y: 0}, {X: 50, Y: 50}}},
		},
		Lanes:       []LaneLayout{{ID: "l1", Y: 5, Height: 150}},
		TotalWidth:  110,
		TotalHeight: 100,
	}

	got := Offset(l, 30, -10)

	if b := got.Nodes["task"].Bounds; b.X != 40 || b.Y != 10 {
		t.Errorf("node at (%v, %v), want (40, 10)", b.X, b.Y)
	}
	if wp := got.Edges["f1"].Waypoints; wp[0] != (Point{X: 30, Y: -10}) || wp[1] != (Point{X: 80, Y: 40}) {
		t.Errorf("waypoints = %v", wp)
	}
	if got.Lanes[0].Y != -5 {
		t.Errorf("lane Y = %v, want -5", got.Lanes[0].Y)
	}
	if got.TotalWidth != 110 || got.TotalHeight != 100 {
		t.Errorf("totals = %vx%v, want unchanged 110x100", got.TotalWidth, got.TotalHeight)
	}
}

func TestOffsetLeavesOriginalUntouched(t *testing.T) {
	l := &Layout{
		Nodes: map[string]*Node{
			"task": {ID: "task", Bounds: Bounds{X: 10, Y: 20, Width: 100, Height: 80}},
		},
		Edges: map[string]*Edge{
			"f1": {ID: "f1", Waypoints: []Point{{X: 0, Y: 0}}},
		},
	}

	_ = Offset(l, 100, 100)

	if b := l.Nodes["task"].Bounds; b.X != 10 || b.Y != 20 {
		t.Errorf("original node moved to (%v, %v)", b.X, b.Y)
	}
	if l.Edges["f1"].Waypoints[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("original waypoint moved to %v", l.Edges["f1"].Waypoints[0])
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	p := bpmn.Process{
		Elements: []bpmn.Element{
			el("start", bpmn.TypeStartEvent),
			el("task", bpmn.TypeTask),
		},
		Flows: []bpmn.Flow{flow("f1", "start", "task")},
	}
	l := Calculate(p, DefaultConfig())

	back := Offset(Offset(l, 37, 91), -37, -91)

	for id, n := range l.Nodes {
		if back.Nodes[id].Bounds != n.Bounds {
			t.Errorf("node %s bounds = %v, want %v", id, back.Nodes[id].Bounds, n.Bounds)
		}
	}
	for id, e := range l.Edges {
		for i, p := range e.Waypoints {
			if back.Edges[id].Waypoints[i] != p {
				t.Errorf("edge %s waypoint %d = %v, want %v", id, i, back.Edges[id].Waypoints[i], p)
			}
		}
	}
}
