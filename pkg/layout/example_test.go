package layout_test

import (
	"fmt"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
	"github.com/flowsketch/flowsketch/pkg/layout"
)

func ExampleCalculate() {
	p := bpmn.Process{
		ID: "Process_1",
		Elements: []bpmn.Element{
			{ID: "start", Type: bpmn.TypeStartEvent},
			{ID: "review", Type: bpmn.TypeUserTask, Name: "Review order"},
			{ID: "end", Type: bpmn.TypeEndEvent},
		},
		Flows: []bpmn.Flow{
			{ID: "f1", Source: "start", Target: "review"},
			{ID: "f2", Source: "review", Target: "end"},
		},
	}

	l := layout.Calculate(p, layout.DefaultConfig())

	review := l.Nodes["review"]
	fmt.Printf("review: level %d at (%.0f, %.0f), %vx%v\n",
		review.Level, review.Bounds.X, review.Bounds.Y, review.Bounds.Width, review.Bounds.Height)
	fmt.Printf("diagram: %vx%v\n", l.TotalWidth, l.TotalHeight)
	// Output:
	// review: level 1 at (0, 136), 100x80
	// diagram: 100x352
}

func ExampleCalculate_lanes() {
	p := bpmn.Process{
		Elements: []bpmn.Element{
			{ID: "intake", Type: bpmn.TypeTask, Name: "Intake"},
			{ID: "approve", Type: bpmn.TypeTask, Name: "Approve"},
		},
		Flows: []bpmn.Flow{
			{ID: "f1", Source: "intake", Target: "approve"},
		},
		Lanes: []bpmn.Lane{
			{ID: "clerk", Name: "Clerk", FlowNodeRefs: []string{"intake"}},
			{ID: "manager", Name: "Manager", FlowNodeRefs: []string{"approve"}},
		},
	}

	l := layout.Calculate(p, layout.DefaultConfig())

	for _, lane := range l.Lanes {
		fmt.Printf("%s: y=%v height=%v\n", lane.Name, lane.Y, lane.Height)
	}
	// Output:
	// Clerk: y=0 height=150
	// Manager: y=150 height=150
}

func ExampleOffset() {
	p := bpmn.Process{
		Elements: []bpmn.Element{{ID: "task", Type: bpmn.TypeTask}},
	}
	l := layout.Calculate(p, layout.DefaultConfig())

	shifted := layout.Offset(l, 100, 50)

	fmt.Printf("original: (%v, %v)\n", l.Nodes["task"].Bounds.X, l.Nodes["task"].Bounds.Y)
	fmt.Printf("shifted:  (%v, %v)\n", shifted.Nodes["task"].Bounds.X, shifted.Nodes["task"].Bounds.Y)
	// Output:
	// original: (0, 0)
	// shifted:  (100, 50)
}
