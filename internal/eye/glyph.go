package eye

import "go-eye-demo/pkg/svgpath"

const (
	// ViewBox is the edge of the square local coordinate space of both glyphs.
	ViewBox = 24.0
	// ViewCenter is the pupil's neutral position on both axes.
	ViewCenter = ViewBox / 2
)

// Path data of the two glyphs in ViewBox space.
var (
	OpenOutlineData = []string{
		"M2.062 12.348a1 1 0 0 1 0-.696 10.75 10.75 0 0 1 19.876 0 1 1 0 0 1 0 .696 10.75 10.75 0 0 1-19.876 0",
	}
	ClosedData = []string{
		"M9.88 9.88a3 3 0 1 0 4.24 4.24",
		"M10.73 5.08A10.43 10.43 0 0 1 12 5c7 0 10 7 10 7a13.16 13.16 0 0 1-1.67 2.68",
		"M6.61 6.61A13.526 13.526 0 0 0 2 12s3 7 10 7a9.74 9.74 0 0 0 5.39-1.61",
	}
	// ClosedSlash is the diagonal bar of the closed glyph.
	ClosedSlash = [2]svgpath.Point{{X: 2, Y: 2}, {X: 22, Y: 22}}
)

var (
	openOutline = parseAll(OpenOutlineData)
	closedPaths = append(parseAll(ClosedData), svgpath.Path{
		{Op: svgpath.OpMove, Pts: [3]svgpath.Point{ClosedSlash[0]}},
		{Op: svgpath.OpLine, Pts: [3]svgpath.Point{ClosedSlash[1]}},
	})
)

func parseAll(data []string) []svgpath.Path {
	out := make([]svgpath.Path, len(data))
	for i, d := range data {
		out[i] = svgpath.MustParse(d)
	}
	return out
}

// Strokes returns the fixed strokes of the glyph selected by closed. The open
// glyph's pupil is not included; it comes from Frame.Pupil.
func Strokes(closed bool) []svgpath.Path {
	if closed {
		return closedPaths
	}
	return openOutline
}
