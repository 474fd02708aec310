package ui

import (
	"image"
	"math"

	"go-eye-demo/internal/event"
	"go-eye-demo/internal/eye"
	"go-eye-demo/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// IconView places an eye icon on screen. It is the icon's layout: the icon
// asks it for its bounds on every pointer sample, so moving the view or
// resizing the icon takes effect immediately.
type IconView struct {
	Icon    *eye.Icon
	Palette render.Palette
	// Pad is the diameter of the round clickable pad drawn behind the icon.
	// Zero means no pad; the icon square itself is the click target.
	Pad float64

	dispatcher *event.Dispatcher
	center     eye.Vec
	placed     bool
	hovered    bool
}

func NewIconView(env eye.Env, cfg eye.Config, palette render.Palette, dispatcher *event.Dispatcher) *IconView {
	v := &IconView{Palette: palette, dispatcher: dispatcher}
	v.Icon = eye.NewIcon(env, v, cfg)
	return v
}

// Place centers the view at (x, y).
func (v *IconView) Place(x, y float64) {
	v.center = eye.Vec{X: x, Y: y}
	v.placed = true
}

// Bounds implements eye.Layout.
func (v *IconView) Bounds() (eye.Rect, bool) {
	if !v.placed {
		return eye.Rect{}, false
	}
	size := v.Icon.Config().Size
	return eye.Rect{X: v.center.X - size/2, Y: v.center.Y - size/2, W: size, H: size}, true
}

// HitRect is the clickable area: the pad if there is one, the icon otherwise.
func (v *IconView) HitRect() image.Rectangle {
	side := v.Pad
	if side == 0 {
		side = v.Icon.Config().Size
	}
	half := side / 2
	return image.Rect(
		int(math.Floor(v.center.X-half)), int(math.Floor(v.center.Y-half)),
		int(math.Ceil(v.center.X+half)), int(math.Ceil(v.center.Y+half)),
	)
}

// Update toggles the closed state on click and reports whether it did.
func (v *IconView) Update(in Input) bool {
	if !v.placed {
		return false
	}
	r := v.HitRect()
	v.hovered = in.Over(r)
	if v.Pad > 0 && v.hovered {
		// pad is round; corners of the square do not count
		v.hovered = math.Hypot(in.X-v.center.X, in.Y-v.center.Y) <= v.Pad/2
	}
	if !v.hovered || !in.JustPressed {
		return false
	}
	closed := v.Icon.Toggle()
	if v.dispatcher != nil {
		v.dispatcher.Dispatch(event.Event{Type: event.IconToggled, Data: closed})
	}
	return true
}

func (v *IconView) Hovered() bool { return v.hovered }

func (v *IconView) Draw(screen *ebiten.Image, r *render.IconRenderer) {
	if !v.placed {
		return
	}
	if v.Pad > 0 {
		r.DrawPad(screen, v.center.X, v.center.Y, v.Pad, v.Palette, v.hovered)
	}
	bounds, _ := v.Bounds()
	r.Draw(screen, v.Icon.Frame(), bounds.X, bounds.Y, v.Palette.IconColor(v.hovered))
}
