package eye

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Circle is the pupil in ViewBox coordinates.
type Circle struct {
	X, Y, R float64
}

// Frame is everything a renderer needs to draw the icon once.
type Frame struct {
	// Size is the on-screen edge length; ViewBox units are scaled by Size/ViewBox.
	Size        float64
	StrokeWidth float64
	Closed      bool
	Pupil       Circle
}

// Scale converts ViewBox units to on-screen pixels.
func (f Frame) Scale() float64 {
	return f.Size / ViewBox
}

// SVG renders the frame as standalone SVG markup using stroke as the color.
func (f Frame) SVG(stroke string) string {
	if stroke == "" {
		stroke = "currentColor"
	}
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round">`,
		num(f.Size), num(f.Size), stroke, num(f.StrokeWidth))
	if f.Closed {
		for _, d := range ClosedData {
			fmt.Fprintf(&b, `<path d="%s"/>`, d)
		}
		fmt.Fprintf(&b, `<line x1="%s" x2="%s" y1="%s" y2="%s"/>`,
			num(ClosedSlash[0].X), num(ClosedSlash[1].X), num(ClosedSlash[0].Y), num(ClosedSlash[1].Y))
	} else {
		for _, d := range OpenOutlineData {
			fmt.Fprintf(&b, `<path d="%s"/>`, d)
		}
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s"/>`, num(f.Pupil.X), num(f.Pupil.Y), num(f.Pupil.R))
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
