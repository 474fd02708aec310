package termui

import (
	"github.com/gdamore/tcell/v2"
)

// Cells returns the terminal footprint of a bitmap: one column per pixel and
// one row per two pixels.
func Cells(b *Bitmap) (cols, rows int) {
	return b.Size, (b.Size + 1) / 2
}

// DrawBitmap paints b with its top-left cell at (col, row). Empty cells are
// cleared with bg so that a previous frame does not bleed through.
func DrawBitmap(screen tcell.Screen, b *Bitmap, col, row int, fg, bg tcell.Style) {
	cols, rows := Cells(b)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			top, bottom := b.At(c, 2*r), b.At(c, 2*r+1)
			ch, style := ' ', bg
			switch {
			case top && bottom:
				ch, style = '█', fg
			case top:
				ch, style = '▀', fg
			case bottom:
				ch, style = '▄', fg
			}
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

// DrawText writes s starting at (col, row) and returns the column after it.
func DrawText(screen tcell.Screen, col, row int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(col, row, ch, nil, style)
		col++
	}
	return col
}

// CellToPixel maps the center of terminal cell (col, row) into the pixel
// space used by Rasterize, where a row is two pixels tall.
func CellToPixel(col, row int, aspect float64) (x, y float64) {
	return float64(col) + 0.5, (float64(row) + 0.5) * aspect
}
