package di

import (
	"strings"
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
	"github.com/flowsketch/flowsketch/pkg/layout"
)

func sampleLayout(t *testing.T) *layout.Layout {
	t.Helper()
	p := bpmn.Process{
		Elements: []bpmn.Element{
			{ID: "start", Type: bpmn.TypeStartEvent},
			{ID: "task", Type: bpmn.TypeUserTask},
			{ID: "end", Type: bpmn.TypeEndEvent},
		},
		Flows: []bpmn.Flow{
			{ID: "f1", Source: "start", Target: "task"},
			{ID: "f2", Source: "task", Target: "end"},
		},
	}
	return layout.Calculate(p, layout.DefaultConfig())
}

func TestEmitStructure(t *testing.T) {
	xml := Emit(sampleLayout(t), Options{DiagramID: "BPMNDiagram_1", PlaneElement: "Process_9"})

	for _, want := range []string{
		`<bpmndi:BPMNDiagram id="BPMNDiagram_1">`,
		`<bpmndi:BPMNPlane id="BPMNDiagram_1_plane" bpmnElement="Process_9">`,
		`<bpmndi:BPMNShape id="start_di" bpmnElement="start">`,
		`<bpmndi:BPMNShape id="task_di" bpmnElement="task">`,
		`<bpmndi:BPMNEdge id="f1_di" bpmnElement="f1">`,
		`</bpmndi:BPMNPlane>`,
		`</bpmndi:BPMNDiagram>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestEmitBoundsRounded(t *testing.T) {
	l := &layout.Layout{
		Nodes: map[string]*layout.Node{
			"task": {ID: "task", Bounds: layout.Bounds{X: 10.4, Y: 20.5, Width: 99.6, Height: 80}},
		},
		Edges: map[string]*layout.Edge{},
	}

	xml := Emit(l, Options{DiagramID: "d"})

	if !strings.Contains(xml, `<dc:Bounds x="10" y="21" width="100" height="80" />`) {
		t.Errorf("bounds not rounded to integers:\n%s", xml)
	}
}

func TestEmitWaypoints(t *testing.T) {
	l := &layout.Layout{
		Nodes: map[string]*layout.Node{},
		Edges: map[string]*layout.Edge{
			"f1": {ID: "f1", Waypoints: []layout.Point{{X: 36, Y: 18.2}, {X: 120, Y: 18.2}}},
		},
	}

	xml := Emit(l, Options{DiagramID: "d"})

	if !strings.Contains(xml, `<di:waypoint x="36" y="18" />`) {
		t.Errorf("first waypoint missing:\n%s", xml)
	}
	if !strings.Contains(xml, `<di:waypoint x="120" y="18" />`) {
		t.Errorf("second waypoint missing:\n%s", xml)
	}
}

func TestEmitLanesAsHorizontalShapes(t *testing.T) {
	l := &layout.Layout{
		Nodes: map[string]*layout.Node{},
		Edges: map[string]*layout.Edge{},
		Lanes: []layout.LaneLayout{
			{ID: "lane1", Y: 0, Height: 150},
		},
		TotalWidth: 500,
	}

	xml := Emit(l, Options{DiagramID: "d"})

	if !strings.Contains(xml, `<bpmndi:BPMNShape id="lane1_di" bpmnElement="lane1" isHorizontal="true">`) {
		t.Errorf("lane shape missing:\n%s", xml)
	}
	if !strings.Contains(xml, `<dc:Bounds x="0" y="0" width="500" height="150" />`) {
		t.Errorf("lane bounds should span the diagram width:\n%s", xml)
	}
}

func TestEmitDeterministicOrder(t *testing.T) {
	l := sampleLayout(t)

	first := Emit(l, Options{DiagramID: "d"})
	second := Emit(l, Options{DiagramID: "d"})
	if first != second {
		t.Error("output should be deterministic")
	}

	// Shapes come out in level order: start before task before end.
	iStart := strings.Index(first, `id="start_di"`)
	iTask := strings.Index(first, `id="task_di"`)
	iEnd := strings.Index(first, `id="end_di"`)
	if !(iStart < iTask && iTask < iEnd) {
		t.Errorf("shape order = %d/%d/%d, want start < task < end", iStart, iTask, iEnd)
	}
}

func TestEmitDefaults(t *testing.T) {
	xml := Emit(sampleLayout(t), Options{})

	if !strings.Contains(xml, `bpmnElement="Process_1"`) {
		t.Error("default plane element should be Process_1")
	}
	if !strings.Contains(xml, `<bpmndi:BPMNDiagram id="BPMNDiagram_`) {
		t.Error("diagram ID should be generated when empty")
	}
}

func TestNewDiagramIDUnique(t *testing.T) {
	a, b := NewDiagramID(), NewDiagramID()
	if a == b {
		t.Error("generated diagram IDs should differ")
	}
	if !strings.HasPrefix(a, "BPMNDiagram_") {
		t.Errorf("ID = %q, want BPMNDiagram_ prefix", a)
	}
}
