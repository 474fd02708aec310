package ui

import (
	"image"
	"strconv"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Slider is a label and value above a track. Value is always Min plus a multiple of Step.
type Slider struct {
	Rect     image.Rectangle
	Label    string
	Min, Max float64
	Step     float64
	Value    float64
	// Format renders the value on the right, an integer when nil.
	Format func(float64) string
	// MinLabel and MaxLabel are drawn under the track ends when set.
	MinLabel, MaxLabel string

	dragging bool
	hovered  bool
}

func NewSlider(rect image.Rectangle, label string, lo, hi, step, value float64) *Slider {
	s := &Slider{Rect: rect, Label: label, Min: lo, Max: hi, Step: step}
	s.Set(value)
	return s
}

// Set snaps v to the step and clamps it to the range.
func (s *Slider) Set(v float64) {
	s.Value = utils.Clamp(utils.SnapStep(v, s.Min, s.Step), s.Min, s.Max)
}

// track is the horizontal track in the lower half of Rect.
func (s *Slider) track() image.Rectangle {
	mid := s.Rect.Min.Y + s.Rect.Dy()*3/4
	r := int(config.SliderKnobRadius)
	return image.Rect(s.Rect.Min.X+r, mid-r, s.Rect.Max.X-r, mid+r)
}

// valueAt maps a cursor x to a value.
func (s *Slider) valueAt(x float64) float64 {
	tr := s.track()
	if tr.Dx() <= 0 {
		return s.Min
	}
	t := utils.Clamp((x-float64(tr.Min.X))/float64(tr.Dx()), 0, 1)
	return utils.Lerp(s.Min, s.Max, t)
}

// Update handles grab and drag. It reports whether Value changed.
func (s *Slider) Update(in Input) bool {
	tr := s.track()
	s.hovered = in.Over(tr)
	if in.Clicked(tr) {
		s.dragging = true
	}
	if s.dragging && !in.Down {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}
	old := s.Value
	s.Set(s.valueAt(in.X))
	return s.Value != old
}

func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) Draw(screen *ebiten.Image, face font.Face) {
	header := image.Rect(s.Rect.Min.X, s.Rect.Min.Y, s.Rect.Max.X, s.Rect.Min.Y+s.Rect.Dy()/2)
	drawLabel(screen, s.Label, face, header, config.TextColor)

	format := s.Format
	if format == nil {
		format = func(v float64) string { return strconv.Itoa(int(v)) }
	}
	value := format(s.Value)
	valueRect := header
	valueRect.Min.X = header.Max.X - textWidth(face, value)
	drawLabel(screen, value, face, valueRect, config.MutedTextColor)

	tr := s.track()
	cy := float32(tr.Min.Y+tr.Max.Y) / 2
	vector.StrokeLine(screen, float32(tr.Min.X), cy, float32(tr.Max.X), cy, 4, config.BorderColor, true)

	t := 0.0
	if s.Max > s.Min {
		t = (s.Value - s.Min) / (s.Max - s.Min)
	}
	knobX := float32(utils.Lerp(float64(tr.Min.X), float64(tr.Max.X), t))
	vector.StrokeLine(screen, float32(tr.Min.X), cy, knobX, cy, 4, config.AccentColor, true)

	knob := config.CardColor
	if s.hovered || s.dragging {
		knob = config.PadColor
	}
	vector.DrawFilledCircle(screen, knobX, cy, config.SliderKnobRadius, knob, true)
	vector.StrokeCircle(screen, knobX, cy, config.SliderKnobRadius, 2, config.AccentColor, true)

	if s.MinLabel != "" || s.MaxLabel != "" {
		below := image.Rect(s.Rect.Min.X, s.Rect.Max.Y, s.Rect.Max.X, s.Rect.Max.Y+config.ControlSpacing)
		drawLabel(screen, s.MinLabel, face, below, config.MutedTextColor)
		below.Min.X = below.Max.X - textWidth(face, s.MaxLabel)
		drawLabel(screen, s.MaxLabel, face, below, config.MutedTextColor)
	}
}
