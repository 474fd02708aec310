// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-eye-demo/internal/config"
	"go-eye-demo/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA

	hovered bool
	pressed bool
}

// NewButton creates a button with the default palette.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.AccentTextColor,
		BgColor:    config.AccentColor,
		HoverColor: config.IconHoverColor,
	}
}

// Update tracks hover and reports whether the button was clicked.
func (b *Button) Update(in Input) bool {
	b.hovered = in.Over(b.Rect)
	b.pressed = b.hovered && in.Down
	return in.Clicked(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bgColor := b.BgColor
	switch {
	case b.pressed:
		bgColor = render.DarkenColor(b.HoverColor)
	case b.hovered:
		bgColor = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, true)

	drawCentered(screen, b.Text, face, b.Rect, b.TextColor)
}

// drawCentered draws s centered in r.
func drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	textX := r.Min.X + (r.Dx()-bounds.Dx())/2 - bounds.Min.X
	textY := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, textX, textY, clr)
}

// drawLabel draws s at x with its baseline centered in r.
func drawLabel(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := r.Min.Y + (r.Dy()+ascent-descent)/2
	text.Draw(screen, s, face, r.Min.X, baseline, clr)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
