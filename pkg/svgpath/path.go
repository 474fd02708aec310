// Package svgpath parses SVG path data into absolute drawing segments.
//
// Parsed paths only contain MoveTo, LineTo, QuadTo, CubicTo and Close segments:
// horizontal/vertical lines become lines, smooth curves get their reflected
// control points resolved and elliptical arcs are approximated by cubic Béziers.
// The result can be replayed into any Sink, such as ebiten's *vector.Path.
package svgpath

// Op identifies a segment kind.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpQuad
	OpCubic
	OpClose
)

// Point is a coordinate in path space.
type Point struct {
	X, Y float64
}

// Segment is one absolute drawing command. Pts holds 1 point for move/line,
// 2 for quad, 3 for cubic and none for close.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// End returns the pen position after the segment.
func (s Segment) End() Point {
	switch s.Op {
	case OpMove, OpLine:
		return s.Pts[0]
	case OpQuad:
		return s.Pts[1]
	case OpCubic:
		return s.Pts[2]
	}
	return Point{}
}

// Path is a parsed path.
type Path []Segment

// Sink receives segments. *vector.Path from ebiten satisfies it.
type Sink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(x1, y1, x2, y2 float32)
	CubicTo(x1, y1, x2, y2, x3, y3 float32)
	Close()
}

// Transform maps path space into the sink's space: p*Scale + Offset.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// Identity is the unit transform.
var Identity = Transform{Scale: 1}

// Apply maps a point.
func (t Transform) Apply(p Point) (float32, float32) {
	return float32(p.X*t.Scale + t.OffsetX), float32(p.Y*t.Scale + t.OffsetY)
}

// Draw replays the path into sink.
func (p Path) Draw(sink Sink, t Transform) {
	for _, s := range p {
		switch s.Op {
		case OpMove:
			x, y := t.Apply(s.Pts[0])
			sink.MoveTo(x, y)
		case OpLine:
			x, y := t.Apply(s.Pts[0])
			sink.LineTo(x, y)
		case OpQuad:
			x1, y1 := t.Apply(s.Pts[0])
			x2, y2 := t.Apply(s.Pts[1])
			sink.QuadTo(x1, y1, x2, y2)
		case OpCubic:
			x1, y1 := t.Apply(s.Pts[0])
			x2, y2 := t.Apply(s.Pts[1])
			x3, y3 := t.Apply(s.Pts[2])
			sink.CubicTo(x1, y1, x2, y2, x3, y3)
		case OpClose:
			sink.Close()
		}
	}
}
