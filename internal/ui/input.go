// internal/ui/input.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the mouse and keyboard state for one tick.
type Input struct {
	X, Y         float64
	Down         bool // left button held
	JustPressed  bool
	JustReleased bool
	Chars        []rune
	Backspace    bool
}

// PollInput reads ebiten input. buf is reused for typed characters.
func PollInput(buf []rune) Input {
	x, y := ebiten.CursorPosition()
	return Input{
		X:            float64(x),
		Y:            float64(y),
		Down:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Chars:        ebiten.AppendInputChars(buf[:0]),
		Backspace:    repeating(ebiten.KeyBackspace),
	}
}

// repeating fires on press, then at the key-repeat rate while held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%4 == 0)
}

func (in Input) Over(r image.Rectangle) bool {
	return hit(r, in.X, in.Y)
}

// Clicked reports a left press inside r.
func (in Input) Clicked(r image.Rectangle) bool {
	return in.JustPressed && in.Over(r)
}

func hit(r image.Rectangle, x, y float64) bool {
	return x >= float64(r.Min.X) && x < float64(r.Max.X) &&
		y >= float64(r.Min.Y) && y < float64(r.Max.Y)
}
