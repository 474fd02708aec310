// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"time"

	"go-eye-demo/internal/eye"

	"github.com/caarlos0/env/v11"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	CardWidth   = 420
	CardMargin  = 40
	CardPadding = 20
	CardTop     = 70
	CardBottom  = ScreenHeight - 30
	TitleY      = 40

	InputHeight      = 40
	InputIconInset   = 12
	ControlHeight    = 28
	SliderHeight     = 40
	ButtonHeight     = 32
	ControlSpacing   = 14
	SliderKnobRadius = 7.0

	// Icon card control ranges
	MinDelayMs  = 0
	MaxDelayMs  = 5000
	DelayStepMs = 100
	MinEyeSize  = 24
	MaxEyeSize  = 80
	EyeSizeStep = 2
	MinPadSize  = 80
	PadScale    = 1.8 // pad = max(MinPadSize, size*PadScale)

	PasswordEyeSize = 24

	FontSize      = 14
	TitleFontSize = 20

	// Terminal demo: one cell column is one icon pixel, rows are twice as tall
	TermCellAspect = 2.0
	TermTick       = 16 * time.Millisecond
)

var (
	BackgroundColor = color.RGBA{248, 250, 252, 255}
	CardColor       = color.RGBA{255, 255, 255, 255}
	BorderColor     = color.RGBA{226, 232, 240, 255}
	TextColor       = color.RGBA{15, 23, 42, 255}
	MutedTextColor  = color.RGBA{100, 116, 139, 255}
	IconColor       = color.RGBA{107, 114, 128, 255}
	IconHoverColor  = color.RGBA{55, 65, 81, 255}
	PadColor        = color.RGBA{241, 245, 249, 255}
	AccentColor     = color.RGBA{15, 23, 42, 255}
	AccentTextColor = color.RGBA{248, 250, 252, 255}
	FocusColor      = color.RGBA{148, 163, 184, 255}
)

// Settings are the runtime knobs read from the environment.
type Settings struct {
	Tracking bool    `env:"EYE_TRACKING" envDefault:"true"`
	DelayMs  int     `env:"EYE_DELAY_MS" envDefault:"500"`
	Smooth   bool    `env:"EYE_SMOOTH" envDefault:"true"`
	Speed    int     `env:"EYE_SPEED" envDefault:"1"`
	Size     float64 `env:"EYE_SIZE" envDefault:"38"`

	// PresetsPath overrides the embedded preset list.
	PresetsPath string `env:"EYE_PRESETS"`
	// PprofAddr enables net/http/pprof when non-empty, e.g. localhost:6060.
	PprofAddr string `env:"EYE_PPROF_ADDR"`
	// Sound plays a click on toggle in the terminal demo.
	Sound bool `env:"EYE_SOUND" envDefault:"true"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.DelayMs < MinDelayMs || s.DelayMs > MaxDelayMs {
		return Settings{}, fmt.Errorf("EYE_DELAY_MS %d out of range [%d, %d]", s.DelayMs, MinDelayMs, MaxDelayMs)
	}
	return s, nil
}

// EyeConfig converts the settings into a standalone icon configuration.
func (s Settings) EyeConfig() eye.Config {
	return eye.Config{
		Tracking: s.Tracking,
		Delay:    time.Duration(s.DelayMs) * time.Millisecond,
		Smooth:   s.Smooth,
		Speed:    s.Speed,
		Size:     s.Size,
	}.Normalize()
}

// PadSize is the diameter of the clickable pad behind the standalone icon.
func PadSize(iconSize float64) float64 {
	return max(MinPadSize, iconSize*PadScale)
}
