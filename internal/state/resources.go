package state

import (
	"time"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/defs"
	"go-eye-demo/pkg/render"

	"golang.org/x/image/font"
)

// Resources are shared by every state of the demo window.
type Resources struct {
	Face      font.Face
	TitleFace font.Face
	Renderer  *render.IconRenderer
	Settings  config.Settings
	Presets   []defs.Preset
	// Now is the clock driving timers and frames; time.Now when nil.
	Now func() time.Time
}

func (r *Resources) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Palette returns the icon colors from config.
func Palette() render.Palette {
	return render.Palette{
		Icon:      config.IconColor,
		IconHover: config.IconHoverColor,
		Pad:       config.PadColor,
		Border:    config.BorderColor,
	}
}
