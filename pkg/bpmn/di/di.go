// Package di serializes computed layouts into the BPMN 2.0 Diagram
// Interchange block.
//
// The emitter is the outbound boundary of the layout engine: it consumes a
// [layout.Layout] and produces the bpmndi:BPMNDiagram XML fragment that a
// BPMN 2.0 document embeds after its process definition. Only geometry is
// emitted - shapes with dc:Bounds, edges with ordered di:waypoint lists,
// and lanes as horizontal bands. Coordinates are rounded to integer units
// at this boundary; the engine itself works in floats.
package di

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/flowsketch/flowsketch/pkg/layout"
)

// BPMN 2.0 namespace URIs for the DI block.
const (
	NamespaceBPMN   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	NamespaceBPMNDI = "http://www.omg.org/spec/BPMN/20100524/DI"
	NamespaceDC     = "http://www.omg.org/spec/DD/20100524/DC"
	NamespaceDI     = "http://www.omg.org/spec/DD/20100524/DI"
)

// Options configures the emitted fragment.
type Options struct {
	// DiagramID names the bpmndi:BPMNDiagram element. Generated with
	// [NewDiagramID] when empty.
	DiagramID string

	// PlaneElement is the bpmnElement reference of the BPMNPlane,
	// typically the process ID. Defaults to "Process_1".
	PlaneElement string

	// Indent is the per-level indentation string. Defaults to two spaces.
	Indent string
}

// NewDiagramID returns a fresh unique diagram ID.
func NewDiagramID() string {
	return "BPMNDiagram_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Emit serializes the layout's geometry as a bpmndi:BPMNDiagram fragment.
// Shapes are emitted in (level, column, id) order and edges in id order, so
// output is deterministic for a given layout. Every shape and edge ID is
// its element/flow ID suffixed with "_di", matching common BPMN tooling.
func Emit(l *layout.Layout, opts Options) string {
	if opts.DiagramID == "" {
		opts.DiagramID = NewDiagramID()
	}
	if opts.PlaneElement == "" {
		opts.PlaneElement = "Process_1"
	}
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	var buf bytes.Buffer
	ind := opts.Indent

	fmt.Fprintf(&buf, "<bpmndi:BPMNDiagram id=%q>\n", opts.DiagramID)
	fmt.Fprintf(&buf, "%s<bpmndi:BPMNPlane id=%q bpmnElement=%q>\n",
		ind, opts.DiagramID+"_plane", opts.PlaneElement)

	for _, lane := range l.Lanes {
		fmt.Fprintf(&buf, "%s<bpmndi:BPMNShape id=%q bpmnElement=%q isHorizontal=\"true\">\n",
			strings.Repeat(ind, 2), lane.ID+"_di", lane.ID)
		writeBounds(&buf, strings.Repeat(ind, 3), layout.Bounds{
			X: 0, Y: lane.Y, Width: l.TotalWidth, Height: lane.Height,
		})
		fmt.Fprintf(&buf, "%s</bpmndi:BPMNShape>\n", strings.Repeat(ind, 2))
	}

	for _, n := range sortedNodes(l) {
		fmt.Fprintf(&buf, "%s<bpmndi:BPMNShape id=%q bpmnElement=%q>\n",
			strings.Repeat(ind, 2), n.ID+"_di", n.ID)
		writeBounds(&buf, strings.Repeat(ind, 3), n.Bounds)
		fmt.Fprintf(&buf, "%s</bpmndi:BPMNShape>\n", strings.Repeat(ind, 2))
	}

	for _, e := range sortedEdges(l) {
		fmt.Fprintf(&buf, "%s<bpmndi:BPMNEdge id=%q bpmnElement=%q>\n",
			strings.Repeat(ind, 2), e.ID+"_di", e.ID)
		for _, p := range e.Waypoints {
			fmt.Fprintf(&buf, "%s<di:waypoint x=\"%d\" y=\"%d\" />\n",
				strings.Repeat(ind, 3), round(p.X), round(p.Y))
		}
		fmt.Fprintf(&buf, "%s</bpmndi:BPMNEdge>\n", strings.Repeat(ind, 2))
	}

	fmt.Fprintf(&buf, "%s</bpmndi:BPMNPlane>\n", ind)
	buf.WriteString("</bpmndi:BPMNDiagram>\n")
	return buf.String()
}

func writeBounds(buf *bytes.Buffer, indent string, b layout.Bounds) {
	fmt.Fprintf(buf, "%s<dc:Bounds x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" />\n",
		indent, round(b.X), round(b.Y), round(b.Width), round(b.Height))
}

func round(v float64) int { return int(math.Round(v)) }

func sortedNodes(l *layout.Layout) []*layout.Node {
	nodes := make([]*layout.Node, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *layout.Node) int {
		if a.Level != b.Level {
			return a.Level - b.Level
		}
		if a.Column != b.Column {
			return a.Column - b.Column
		}
		return strings.Compare(a.ID, b.ID)
	})
	return nodes
}

func sortedEdges(l *layout.Layout) []*layout.Edge {
	edges := make([]*layout.Edge, 0, len(l.Edges))
	for _, e := range l.Edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b *layout.Edge) int {
		return strings.Compare(a.ID, b.ID)
	})
	return edges
}
