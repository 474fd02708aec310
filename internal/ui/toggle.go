package ui

import (
	"image"

	"go-eye-demo/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const switchWidth = 44

// Toggle is a labelled row with a switch at its right edge.
type Toggle struct {
	Rect  image.Rectangle
	Label string
	On    bool

	hovered bool
}

func NewToggle(rect image.Rectangle, label string, on bool) *Toggle {
	return &Toggle{Rect: rect, Label: label, On: on}
}

// switchRect is the switch itself, the only clickable part.
func (t *Toggle) switchRect() image.Rectangle {
	return image.Rect(t.Rect.Max.X-switchWidth, t.Rect.Min.Y, t.Rect.Max.X, t.Rect.Max.Y)
}

// Update flips On on a click and reports whether it changed.
func (t *Toggle) Update(in Input) bool {
	sw := t.switchRect()
	t.hovered = in.Over(sw)
	if in.Clicked(sw) {
		t.On = !t.On
		return true
	}
	return false
}

func (t *Toggle) Draw(screen *ebiten.Image, face font.Face) {
	drawLabel(screen, t.Label, face, t.Rect, config.TextColor)

	sw := t.switchRect()
	radius := float32(sw.Dy()) / 2
	track := config.BorderColor
	if t.On {
		track = config.AccentColor
	}
	if t.hovered {
		track = config.IconHoverColor
	}
	left := float32(sw.Min.X) + radius
	right := float32(sw.Max.X) - radius
	cy := float32(sw.Min.Y) + radius
	vector.DrawFilledCircle(screen, left, cy, radius, track, true)
	vector.DrawFilledCircle(screen, right, cy, radius, track, true)
	vector.DrawFilledRect(screen, left, float32(sw.Min.Y), right-left, float32(sw.Dy()), track, true)

	knobX := left
	if t.On {
		knobX = right
	}
	vector.DrawFilledCircle(screen, knobX, cy, radius-3, config.CardColor, true)
}
