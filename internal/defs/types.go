// internal/defs/types.go
package defs

import (
	"time"

	"go-eye-demo/internal/eye"
)

// Preset is a named eye configuration shown in the demo.
type Preset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Tracking bool    `json:"tracking"`
	DelayMs  int     `json:"delay_ms"`
	Smooth   bool    `json:"smooth"`
	Speed    int     `json:"speed"`
	Size     float64 `json:"size"`
}

// EyeConfig converts the preset into an icon configuration.
func (p Preset) EyeConfig() eye.Config {
	return eye.Config{
		Tracking: p.Tracking,
		Delay:    time.Duration(p.DelayMs) * time.Millisecond,
		Smooth:   p.Smooth,
		Speed:    p.Speed,
		Size:     p.Size,
	}.Normalize()
}
