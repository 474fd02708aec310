package eye

import (
	"math"
	"time"

	"go-eye-demo/internal/utils"
)

const (
	DefaultDelay = 500 * time.Millisecond
	DefaultSpeed = 5
	DefaultSize  = 24.0

	MinSpeed = 1
	MaxSpeed = 20
)

// Config is the caller-supplied icon configuration.
type Config struct {
	// Closed selects the slashed glyph instead of the open eye.
	Closed bool
	// Tracking makes the pupil follow the pointer once Delay has passed.
	Tracking bool
	Delay    time.Duration
	// Smooth eases the pupil toward the pointer instead of snapping.
	Smooth bool
	// Speed in [MinSpeed, MaxSpeed]; higher converges faster.
	Speed int
	// Size is the rendered edge length of the square icon, in pixels.
	Size float64
}

// DefaultConfig returns the configuration used when the host sets nothing.
func DefaultConfig() Config {
	return Config{
		Delay: DefaultDelay,
		Speed: DefaultSpeed,
		Size:  DefaultSize,
	}
}

// Normalize clamps Speed to [MinSpeed, MaxSpeed], replaces a non-positive or
// non-finite Size with DefaultSize and a negative Delay with zero.
func (c Config) Normalize() Config {
	c.Speed = utils.ClampInt(c.Speed, MinSpeed, MaxSpeed)
	if c.Size <= 0 || math.IsNaN(c.Size) || math.IsInf(c.Size, 0) {
		c.Size = DefaultSize
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	return c
}
