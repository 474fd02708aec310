package eye

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaxMovement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size float64
		want float64
	}{
		{size: 20, want: 3.0}, // min(4, 2) * 1.5
		{size: 24, want: 3.6}, // min(4, 2.4) * 1.5
		{size: 30, want: 4.5}, // still gets the small-icon allowance
		{size: 35, want: 3.5},
		{size: 40, want: 4},
		{size: 80, want: 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, MaxMovement(tt.size), 1e-12, "size %v", tt.size)
	}
}

func TestTargetOffsetClampsWithoutTurning(t *testing.T) {
	t.Parallel()

	const maxMove = 3.6
	for _, dx := range []float64{-250, -10, -1, -0.3, 0, 0.5, 2, 3.6, 100} {
		for _, dy := range []float64{-80, -2, 0, 1, 1.5, 40} {
			got := TargetOffset(dx, dy, maxMove)
			distance := math.Hypot(dx, dy)

			assert.LessOrEqual(t, got.Len(), maxMove+1e-9, "dx=%v dy=%v", dx, dy)
			if distance == 0 {
				assert.Equal(t, Vec{}, got)
				continue
			}
			// same direction: zero cross product, positive dot product
			assert.InDelta(t, 0, dx*got.Y-dy*got.X, 1e-9, "dx=%v dy=%v", dx, dy)
			assert.Greater(t, dx*got.X+dy*got.Y, 0.0, "dx=%v dy=%v", dx, dy)
			if distance <= maxMove {
				assert.InDelta(t, dx, got.X, 1e-12)
				assert.InDelta(t, dy, got.Y, 1e-12)
			} else {
				assert.InDelta(t, maxMove, got.Len(), 1e-9)
			}
		}
	}
}

func TestTargetOffsetScenario(t *testing.T) {
	t.Parallel()

	got := TargetOffset(100, 0, MaxMovement(24))
	assert.InDelta(t, 3.6, got.X, 1e-12)
	assert.Zero(t, got.Y)

	got = TargetOffset(0, -100, MaxMovement(20))
	assert.Zero(t, got.X)
	assert.InDelta(t, -3.0, got.Y, 1e-12)
}

func TestEaseFactor(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.632, EaseFactor(20), 1e-3)
	assert.InDelta(t, 1-math.Exp(-1), EaseFactor(20), 1e-15)
	assert.InDelta(t, 0.049, EaseFactor(1), 1e-3)
	assert.InDelta(t, 1-math.Exp(-1.0/16), EaseFactor(5), 1e-15)

	for s := MinSpeed; s < MaxSpeed; s++ {
		f := EaseFactor(s)
		assert.Greater(t, f, 0.0)
		assert.Less(t, f, 1.0)
		assert.Less(t, f, EaseFactor(s+1), "faster speed eases more per frame")
	}
}

func TestEase(t *testing.T) {
	t.Parallel()

	got := Ease(Vec{X: 0, Y: 10}, Vec{X: 4, Y: 0}, 0.25)
	assert.InDelta(t, 1, got.X, 1e-12)
	assert.InDelta(t, 7.5, got.Y, 1e-12)
}

func TestPupilAndStrokeScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size          float64
		pupil, stroke float64
	}{
		{size: 6, pupil: 1.5, stroke: 1},
		{size: 18, pupil: 1.5, stroke: 1.5},
		{size: 24, pupil: 2, stroke: 2},
		{size: 38, pupil: 38.0 / 12, stroke: 2.5},
		{size: 80, pupil: 4, stroke: 2.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.pupil, PupilRadius(tt.size), 1e-12, "size %v", tt.size)
		assert.InDelta(t, tt.stroke, StrokeWidth(tt.size), 1e-12, "size %v", tt.size)
	}
}

func TestVecFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Vec{X: 0, Y: 2}, Vec{X: math.NaN(), Y: 2}.Finite())
	assert.Equal(t, Vec{X: 1, Y: 0}, Vec{X: 1, Y: math.Inf(-1)}.Finite())
}

func TestRect(t *testing.T) {
	t.Parallel()

	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.Equal(t, Vec{X: 25, Y: 40}, r.Center())
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(40, 20))
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultConfig(), Config{Speed: DefaultSpeed, Delay: DefaultDelay, Size: DefaultSize}.Normalize())

	c := Config{Speed: 0, Size: -3, Delay: -time.Second}.Normalize()
	assert.Equal(t, MinSpeed, c.Speed)
	assert.Equal(t, DefaultSize, c.Size)
	assert.Zero(t, c.Delay)

	c = Config{Speed: 99, Size: math.Inf(1)}.Normalize()
	assert.Equal(t, MaxSpeed, c.Speed)
	assert.Equal(t, DefaultSize, c.Size)

	c = Config{Speed: 7, Size: 38, Delay: 200 * time.Millisecond}.Normalize()
	assert.Equal(t, Config{Speed: 7, Size: 38, Delay: 200 * time.Millisecond}, c)
}
