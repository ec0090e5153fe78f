package layout

import (
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

func TestPlaceBoundaryEventsSingleCentered(t *testing.T) {
	cfg := DefaultConfig()
	elements := []bpmn.Element{
		el("task", bpmn.TypeTask),
		{ID: "timer", Type: bpmn.TypeBoundaryEvent, AttachedTo: "task"},
	}
	bounds := map[string]Bounds{
		"task": {X: 200, Y: 100, Width: 100, Height: 80},
	}

	placeBoundaryEvents(elements, bounds, cfg)

	b, ok := bounds["timer"]
	if !ok {
		t.Fatal("boundary event received no bounds")
	}
	// Centered on the host's bottom edge midpoint (250, 180).
	if b.CenterX() != 250 || b.CenterY() != 180 {
		t.Errorf("center = (%v, %v), want (250, 180)", b.CenterX(), b.CenterY())
	}
	if b.Width != 36 || b.Height != 36 {
		t.Errorf("size = %vx%v, want 36x36", b.Width, b.Height)
	}
}

func TestPlaceBoundaryEventsPairSymmetric(t *testing.T) {
	cfg := DefaultConfig()
	elements := []bpmn.Element{
		el("task", bpmn.TypeTask),
		{ID: "e1", Type: bpmn.TypeBoundaryEvent, AttachedTo: "task"},
		{ID: "e2", Type: bpmn.TypeBoundaryEvent, AttachedTo: "task"},
	}
	bounds := map[string]Bounds{
		"task": {X: 200, Y: 100, Width: 100, Height: 80},
	}

	placeBoundaryEvents(elements, bounds, cfg)

	// Two events straddle the midpoint 250 at half the spacing each.
	if got := bounds["e1"].CenterX(); got != 225 {
		t.Errorf("e1 center X = %v, want 225", got)
	}
	if got := bounds["e2"].CenterX(); got != 275 {
		t.Errorf("e2 center X = %v, want 275", got)
	}
}

func TestPlaceBoundaryEventsMissingHostSkipped(t *testing.T) {
	cfg := DefaultConfig()
	elements := []bpmn.Element{
		{ID: "orphan", Type: bpmn.TypeBoundaryEvent, AttachedTo: "ghost"},
		{ID: "detached", Type: bpmn.TypeBoundaryEvent},
	}
	bounds := map[string]Bounds{}

	placeBoundaryEvents(elements, bounds, cfg)

	if len(bounds) != 0 {
		t.Errorf("got %d bounds, want 0", len(bounds))
	}
}

func TestPositionOnEdge(t *testing.T) {
	host := Bounds{X: 0, Y: 0, Width: 100, Height: 80}

	tests := []struct {
		name   string
		edge   HostEdge
		cx, cy float64
	}{
		{"bottom", EdgeBottom, 50, 80},
		{"top", EdgeTop, 50, 0},
		{"left", EdgeLeft, 0, 40},
		{"right", EdgeRight, 100, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := positionOnEdge(host, tt.edge, 0, 36)
			if b.CenterX() != tt.cx || b.CenterY() != tt.cy {
				t.Errorf("center = (%v, %v), want (%v, %v)", b.CenterX(), b.CenterY(), tt.cx, tt.cy)
			}
		})
	}
}
