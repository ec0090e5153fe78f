package layout

import (
	"testing"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
)

func TestComputeLanesMinHeight(t *testing.T) {
	cfg := DefaultConfig()
	lanes := []bpmn.Lane{
		{ID: "l1", Name: "First"},
		{ID: "l2", Name: "Second"},
	}

	out, total := computeLanes(lanes, map[string]Bounds{}, 0, cfg)

	if len(out) != 2 {
		t.Fatalf("got %d lanes, want 2", len(out))
	}
	if out[0].Height != 150 || out[1].Height != 150 {
		t.Errorf("lane heights = %v/%v, want 150/150", out[0].Height, out[1].Height)
	}
	if out[1].Y != 150 {
		t.Errorf("second lane Y = %v, want 150", out[1].Y)
	}
	if total != 300 {
		t.Errorf("total = %v, want 300", total)
	}
}

func TestComputeLanesGrowsToContent(t *testing.T) {
	cfg := DefaultConfig()
	bounds := map[string]Bounds{
		"task": {X: 0, Y: 100, Width: 100, Height: 80},
	}
	lanes := []bpmn.Lane{
		{ID: "l1", FlowNodeRefs: []string{"task"}},
	}

	out, _ := computeLanes(lanes, bounds, 0, cfg)

	// Element bottom 180 plus padding 40.
	if got := out[0].Height; got != 220 {
		t.Errorf("lane height = %v, want 220", got)
	}
}

func TestComputeLanesMissingRefSkipped(t *testing.T) {
	cfg := DefaultConfig()
	lanes := []bpmn.Lane{
		{ID: "l1", FlowNodeRefs: []string{"ghost"}},
	}

	out, _ := computeLanes(lanes, map[string]Bounds{}, 0, cfg)

	if got := out[0].Height; got != 150 {
		t.Errorf("lane height = %v, want min height 150", got)
	}
}

func TestComputeLanesEmpty(t *testing.T) {
	out, total := computeLanes(nil, map[string]Bounds{}, 0, DefaultConfig())
	if out != nil || total != 0 {
		t.Errorf("got %v/%v, want nil/0", out, total)
	}
}

func TestConstrainToLanesClamps(t *testing.T) {
	cfg := DefaultConfig()
	bounds := map[string]Bounds{
		"above": {X: 0, Y: 0, Width: 100, Height: 80},
		"below": {X: 0, Y: 400, Width: 100, Height: 80},
	}
	lanes := []LaneLayout{
		{ID: "l1", FlowNodeRefs: []string{"above", "below"}, Y: 100, Height: 200},
	}

	constrainToLanes(lanes, bounds, cfg)

	// Band is [100, 300] with a 20 margin on both sides.
	if got := bounds["above"].Y; got != 120 {
		t.Errorf("above.Y = %v, want 120", got)
	}
	if got := bounds["below"].Y; got != 200 {
		t.Errorf("below.Y = %v, want 200 (band bottom minus margin and height)", got)
	}
}

func TestConstrainToLanesInsideUntouched(t *testing.T) {
	cfg := DefaultConfig()
	bounds := map[string]Bounds{
		"task": {X: 0, Y: 150, Width: 100, Height: 80},
	}
	lanes := []LaneLayout{
		{ID: "l1", FlowNodeRefs: []string{"task"}, Y: 100, Height: 200},
	}

	constrainToLanes(lanes, bounds, cfg)

	if got := bounds["task"].Y; got != 150 {
		t.Errorf("task.Y = %v, want 150 (unchanged)", got)
	}
}

func TestConstrainToLanesInvertedRangePrefersTop(t *testing.T) {
	cfg := DefaultConfig()
	// Element taller than the band; the clamp range inverts and the top
	// of the band wins.
	bounds := map[string]Bounds{
		"tall": {X: 0, Y: 0, Width: 100, Height: 300},
	}
	lanes := []LaneLayout{
		{ID: "l1", FlowNodeRefs: []string{"tall"}, Y: 100, Height: 150},
	}

	constrainToLanes(lanes, bounds, cfg)

	if got := bounds["tall"].Y; got != 120 {
		t.Errorf("tall.Y = %v, want 120 (top of band)", got)
	}
}

func TestConstrainToLanesUnreferencedUntouched(t *testing.T) {
	cfg := DefaultConfig()
	bounds := map[string]Bounds{
		"free": {X: 0, Y: 0, Width: 100, Height: 80},
	}
	lanes := []LaneLayout{
		{ID: "l1", FlowNodeRefs: []string{"other"}, Y: 100, Height: 200},
	}

	constrainToLanes(lanes, bounds, cfg)

	if got := bounds["free"].Y; got != 0 {
		t.Errorf("free.Y = %v, want 0 (not referenced by any lane)", got)
	}
}
