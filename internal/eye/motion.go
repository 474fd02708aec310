package eye

import (
	"math"

	"go-eye-demo/internal/utils"
)

// Vec is a 2D offset in icon pixels.
type Vec struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Finite returns v with every non-finite component replaced by zero.
func (v Vec) Finite() Vec {
	return Vec{X: utils.FiniteOr(v.X, 0), Y: utils.FiniteOr(v.Y, 0)}
}

// Rect is an on-screen bounding box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the box.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether (x, y) lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MaxMovement is the radius the pupil may travel from center. Small icons
// get a 1.5x allowance so the motion stays visible.
func MaxMovement(size float64) float64 {
	m := math.Min(4, size/10)
	if size <= 30 {
		m *= 1.5
	}
	return m
}

// TargetOffset scales (dx, dy) down so its length is at most maxMovement,
// preserving direction.
func TargetOffset(dx, dy, maxMovement float64) Vec {
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return Vec{}
	}
	scale := math.Min(maxMovement, distance) / distance
	return Vec{X: dx * scale, Y: dy * scale}
}

// EaseFactor is the per-frame weight of the one-pole low-pass filter.
// speed 20 gives 1-e^-1 (~0.632), speed 1 gives 1-e^-1/20 (~0.049).
func EaseFactor(speed int) float64 {
	return 1 - math.Exp(-1/float64(21-speed))
}

// Ease moves cur toward target by factor.
func Ease(cur, target Vec, factor float64) Vec {
	return Vec{
		X: utils.Lerp(cur.X, target.X, factor),
		Y: utils.Lerp(cur.Y, target.Y, factor),
	}
}

// PupilRadius scales with size and stays within [1.5, 4].
func PupilRadius(size float64) float64 {
	return utils.Clamp(size/12, 1.5, 4)
}

// StrokeWidth scales with size and stays within [1, 2.5].
func StrokeWidth(size float64) float64 {
	return utils.Clamp(size/12, 1, 2.5)
}
