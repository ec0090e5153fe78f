package layout

import "github.com/flowsketch/flowsketch/pkg/bpmn"

// HostEdge selects which edge of a host's bounds boundary events are
// distributed along.
type HostEdge int

const (
	EdgeBottom HostEdge = iota
	EdgeTop
	EdgeLeft
	EdgeRight
)

// placeBoundaryEvents positions boundary events on the bottom edge of their
// host and adds their bounds to the bounds map. Events whose host has no
// bounds are skipped. Attachment order follows the element list, so the
// leftmost event is the first one declared.
func placeBoundaryEvents(elements []bpmn.Element, bounds map[string]Bounds, cfg Config) {
	byHost := make(map[string][]bpmn.Element)
	var hosts []string
	for _, e := range elements {
		if !e.IsBoundaryEvent() || e.AttachedTo == "" {
			continue
		}
		if _, ok := bounds[e.AttachedTo]; !ok {
			continue
		}
		if _, seen := byHost[e.AttachedTo]; !seen {
			hosts = append(hosts, e.AttachedTo)
		}
		byHost[e.AttachedTo] = append(byHost[e.AttachedTo], e)
	}

	for _, host := range hosts {
		events := byHost[host]
		hostBounds := bounds[host]

		// Event centers are symmetric around the edge midpoint, spaced by
		// the configured constant.
		for i, e := range events {
			offset := (float64(i) - float64(len(events)-1)/2) * cfg.BoundarySpacing
			bounds[e.ID] = positionOnEdge(hostBounds, EdgeBottom, offset, cfg.BoundaryEventSize)
		}
	}
}

// positionOnEdge returns the bounds of a square shape of the given size
// centered on a point along one edge of host. The offset is a signed
// distance from the edge midpoint, along the edge's axis.
func positionOnEdge(host Bounds, edge HostEdge, offset, size float64) Bounds {
	half := size / 2

	var cx, cy float64
	switch edge {
	case EdgeTop:
		cx, cy = host.CenterX()+offset, host.Y
	case EdgeLeft:
		cx, cy = host.X, host.CenterY()+offset
	case EdgeRight:
		cx, cy = host.Right(), host.CenterY()+offset
	default: // EdgeBottom
		cx, cy = host.CenterX()+offset, host.Bottom()
	}

	return Bounds{X: cx - half, Y: cy - half, Width: size, Height: size}
}
