// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette holds the colors used to draw an icon and the pad behind it.
type Palette struct {
	Icon      color.RGBA
	IconHover color.RGBA
	Pad       color.RGBA
	Border    color.RGBA
}

// IconColor picks the stroke color for the current hover state.
func (p Palette) IconColor(hovered bool) color.RGBA {
	if hovered {
		return p.IconHover
	}
	return p.Icon
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// paintVertices sets every vertex to c.
func paintVertices(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
