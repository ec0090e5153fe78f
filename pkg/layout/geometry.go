package layout

// Point is a single waypoint in layout units.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Size is a width/height pair from the element size table.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Bounds is the rectangle occupied by a diagram element, in layout units.
// Width and height are always positive for computed bounds; X and Y may be
// negative until an offset pass normalizes them against a chosen origin.
type Bounds struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center.
func (b Bounds) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center.
func (b Bounds) CenterY() float64 { return b.Y + b.Height/2 }

// RightCenter returns the midpoint of the right edge, where outgoing
// connectors attach.
func (b Bounds) RightCenter() Point { return Point{X: b.Right(), Y: b.CenterY()} }

// LeftCenter returns the midpoint of the left edge, where incoming
// connectors attach.
func (b Bounds) LeftCenter() Point { return Point{X: b.X, Y: b.CenterY()} }
