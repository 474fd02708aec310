// Package termui draws eye frames into a tcell screen using half-block cells.
package termui

import (
	"math"

	"go-eye-demo/internal/eye"
	"go-eye-demo/pkg/svgpath"
)

// flattenTolerance is in ViewBox units.
const flattenTolerance = 0.05

var (
	openPolylines   = flattenAll(eye.Strokes(false))
	closedPolylines = flattenAll(eye.Strokes(true))
)

func flattenAll(paths []svgpath.Path) [][]svgpath.Point {
	var out [][]svgpath.Point
	for _, p := range paths {
		out = append(out, p.Flatten(flattenTolerance)...)
	}
	return out
}

// Bitmap is a square pixel grid; pixel (0,0) is the top-left corner.
type Bitmap struct {
	Size int
	px   []bool
}

func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Size || y >= b.Size {
		return false
	}
	return b.px[y*b.Size+x]
}

// Lit counts set pixels.
func (b *Bitmap) Lit() int {
	n := 0
	for _, v := range b.px {
		if v {
			n++
		}
	}
	return n
}

// Rasterize samples frame at pixel centers. A pixel is set when its center lies
// within half a stroke (plus half a pixel) of any stroke of the glyph.
func Rasterize(frame eye.Frame) *Bitmap {
	size := int(math.Round(frame.Size))
	b := &Bitmap{Size: size, px: make([]bool, size*size)}
	if size == 0 {
		return b
	}

	scale := frame.Scale()
	reach := frame.StrokeWidth/2 + 0.5/scale

	lines := openPolylines
	if frame.Closed {
		lines = closedPolylines
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			q := svgpath.Point{X: (float64(x) + 0.5) / scale, Y: (float64(y) + 0.5) / scale}
			b.px[y*size+x] = nearStroke(q, lines, reach) || (!frame.Closed && nearRing(q, frame.Pupil, reach))
		}
	}
	return b
}

func nearStroke(q svgpath.Point, lines [][]svgpath.Point, reach float64) bool {
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			if svgpath.DistanceToSegment(q, line[i-1], line[i]) <= reach {
				return true
			}
		}
	}
	return false
}

func nearRing(q svgpath.Point, c eye.Circle, reach float64) bool {
	d := math.Hypot(q.X-c.X, q.Y-c.Y)
	return math.Abs(d-c.R) <= reach
}
