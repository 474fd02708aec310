package render

import (
	"image/color"
	"math"

	"go-eye-demo/internal/eye"
	"go-eye-demo/pkg/svgpath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// IconRenderer strokes eye frames onto an ebiten image. Vertex buffers are
// reused between calls, so one renderer must not be shared across goroutines.
type IconRenderer struct {
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
}

func NewIconRenderer() *IconRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &IconRenderer{
		strokeImg: strokeImg,
		strokeVs:  make([]ebiten.Vertex, 0, 512),
		strokeIs:  make([]uint16, 0, 768),
	}
}

// Draw strokes frame with its top-left corner at (x, y).
func (r *IconRenderer) Draw(target *ebiten.Image, frame eye.Frame, x, y float64, clr color.Color) {
	scale := frame.Scale()
	t := svgpath.Transform{Scale: scale, OffsetX: x, OffsetY: y}

	path := vector.Path{}
	for _, stroke := range eye.Strokes(frame.Closed) {
		stroke.Draw(&path, t)
	}
	if !frame.Closed {
		cx, cy := t.Apply(svgpath.Point{X: frame.Pupil.X, Y: frame.Pupil.Y})
		radius := float32(frame.Pupil.R * scale)
		// Arc starts at the angle-zero point; move there to avoid a joining line.
		path.MoveTo(cx+radius, cy)
		path.Arc(cx, cy, radius, 0, 2*math.Pi, vector.Clockwise)
		path.Close()
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(frame.StrokeWidth * scale),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	paintVertices(r.strokeVs, clr)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawPad fills the circular pad centered at (cx, cy) and outlines it.
func (r *IconRenderer) DrawPad(target *ebiten.Image, cx, cy, diameter float64, palette Palette, hovered bool) {
	fill := palette.Pad
	if hovered {
		fill = blend(palette.Pad, palette.Border)
	}
	vector.DrawFilledCircle(target, float32(cx), float32(cy), float32(diameter/2), fill, true)
	vector.StrokeCircle(target, float32(cx), float32(cy), float32(diameter/2), 1, palette.Border, true)
}

func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: max(a.A, b.A),
	}
}
