package layout

import "github.com/flowsketch/flowsketch/pkg/bpmn"

// LaneLayout is the computed vertical band for one lane.
type LaneLayout struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name,omitempty" bson:"name,omitempty"`
	FlowNodeRefs []string `json:"flowNodeRefs,omitempty" bson:"flow_node_refs,omitempty"`
	Y            float64  `json:"y" bson:"y"`
	Height       float64  `json:"height" bson:"height"`
}

// computeLanes stacks lanes vertically from startY, in the given order.
// Each lane is sized to the larger of the minimum lane height and the
// bottom of its lowest referenced element plus padding. References to IDs
// without bounds are skipped. The returned total is the stacked height of
// all lanes.
func computeLanes(lanes []bpmn.Lane, bounds map[string]Bounds, startY float64, cfg Config) ([]LaneLayout, float64) {
	if len(lanes) == 0 {
		return nil, 0
	}

	out := make([]LaneLayout, 0, len(lanes))
	y := startY
	for _, lane := range lanes {
		requiredBottom := y + cfg.MinLaneHeight
		for _, ref := range lane.FlowNodeRefs {
			b, ok := bounds[ref]
			if !ok {
				continue
			}
			if bottom := b.Bottom() + cfg.LanePadding; bottom > requiredBottom {
				requiredBottom = bottom
			}
		}

		out = append(out, LaneLayout{
			ID:           lane.ID,
			Name:         lane.Name,
			FlowNodeRefs: lane.FlowNodeRefs,
			Y:            y,
			Height:       requiredBottom - y,
		})
		y = requiredBottom
	}

	return out, y - startY
}

// constrainToLanes clamps each lane-referenced element's y coordinate into
// its lane band, leaving a margin at the band's top and bottom. Elements
// referenced by no lane pass through untouched. The clamp does not reflow:
// an element taller than its lane band would invert the clamp range, in
// which case the top of the range wins and the element sticks out below.
func constrainToLanes(lanes []LaneLayout, bounds map[string]Bounds, cfg Config) {
	for _, lane := range lanes {
		minY := lane.Y + cfg.LaneMargin
		for _, ref := range lane.FlowNodeRefs {
			b, ok := bounds[ref]
			if !ok {
				continue
			}

			maxY := lane.Y + lane.Height - cfg.LaneMargin - b.Height
			y := b.Y
			if y < minY {
				y = minY
			}
			if y > maxY {
				y = maxY
			}
			if y < minY {
				y = minY // inverted range: prefer the top of the band
			}

			b.Y = y
			bounds[ref] = b
		}
	}
}
