package eye

import (
	"math"
	"strings"
	"testing"
	"time"

	"go-eye-demo/internal/event"
	"go-eye-demo/internal/loop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const frameStep = 16 * time.Millisecond

type harness struct {
	loop       *loop.Loop
	dispatcher *event.Dispatcher
	feed       *event.PointerFeed
	bounds     Rect
	placed     bool
	icon       *Icon
}

// newHarness places a 24px icon centered on (100, 100).
func newHarness(cfg Config) *harness {
	d := event.NewDispatcher()
	h := &harness{
		loop:       loop.New(epoch),
		dispatcher: d,
		feed:       event.NewPointerFeed(d),
		bounds:     Rect{X: 88, Y: 88, W: 24, H: 24},
		placed:     true,
	}
	env := Env{Pointer: h.feed, Timers: h.loop, Frames: h.loop}
	h.icon = NewIcon(env, LayoutFunc(func() (Rect, bool) { return h.bounds, h.placed }), cfg)
	return h
}

func (h *harness) subscribers() int {
	return h.dispatcher.Count(event.PointerMoved)
}

func trackingConfig() Config {
	cfg := DefaultConfig()
	cfg.Tracking = true
	return cfg
}

func TestIconIgnoresPointerWhenTrackingDisabled(t *testing.T) {
	t.Parallel()

	h := newHarness(DefaultConfig())
	h.icon.Mount()
	h.loop.Step(5 * time.Second)

	h.feed.Update(300, 100)
	h.loop.Step(frameStep)

	assert.False(t, h.icon.Active())
	assert.Equal(t, Vec{}, h.icon.Offset())
	assert.Zero(t, h.subscribers())
	f := h.icon.Frame()
	assert.Equal(t, ViewCenter, f.Pupil.X)
	assert.Equal(t, ViewCenter, f.Pupil.Y)

	timers, frames := h.loop.Pending()
	assert.Zero(t, timers)
	assert.Zero(t, frames)
}

func TestIconWaitsForDelay(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()

	h.loop.Step(499 * time.Millisecond)
	h.feed.Update(300, 100)
	assert.False(t, h.icon.Active())
	assert.Equal(t, Vec{}, h.icon.Offset())
	assert.Zero(t, h.subscribers())

	h.loop.Step(time.Millisecond)
	assert.True(t, h.icon.Active())
	assert.Equal(t, 1, h.subscribers())
}

func TestIconSnapsWithoutSmoothing(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(DefaultDelay)

	h.feed.Update(200, 100)
	assert.InDelta(t, 3.6, h.icon.Offset().X, 1e-12)
	assert.Zero(t, h.icon.Offset().Y)
	assert.Equal(t, h.icon.Target(), h.icon.Offset())

	f := h.icon.Frame()
	assert.InDelta(t, ViewCenter+3.6, f.Pupil.X, 1e-12)
	assert.Equal(t, ViewCenter, f.Pupil.Y)

	_, frames := h.loop.Pending()
	assert.Zero(t, frames, "no frame loop without smoothing")
}

func TestIconSmoothingConvergesWithoutOvershoot(t *testing.T) {
	t.Parallel()

	cfg := trackingConfig()
	cfg.Smooth = true
	h := newHarness(cfg)
	h.icon.Mount()
	h.loop.Step(DefaultDelay)

	h.feed.Update(100, 300)
	target := h.icon.Target()
	require.InDelta(t, 3.6, target.Y, 1e-12)
	assert.Equal(t, Vec{}, h.icon.Offset(), "smoothing does not snap")

	prev := 0.0
	for i := 0; i < 300; i++ {
		h.loop.Step(frameStep)
		y := h.icon.Offset().Y
		assert.Greater(t, y, prev, "frame %d", i)
		assert.LessOrEqual(t, y, target.Y, "frame %d", i)
		prev = y
	}
	assert.InDelta(t, target.Y, prev, 1e-4)
	assert.InDelta(t, 0, h.icon.Offset().X, 1e-12)
}

func TestIconSmoothingStepUsesSpeed(t *testing.T) {
	t.Parallel()

	for _, speed := range []int{1, 5, 20} {
		cfg := trackingConfig()
		cfg.Smooth = true
		cfg.Speed = speed
		h := newHarness(cfg)
		h.icon.Mount()
		h.loop.Step(DefaultDelay)

		// The activation tick already queued the first frame.
		h.feed.Update(200, 100)
		h.loop.Step(frameStep)
		assert.InDelta(t, 3.6*EaseFactor(speed), h.icon.Offset().X, 1e-12, "speed %d", speed)
	}
}

func TestIconDelayChangeResets(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(DefaultDelay)
	h.feed.Update(200, 100)
	require.NotEqual(t, Vec{}, h.icon.Offset())

	cfg := h.icon.Config()
	cfg.Delay = time.Second
	h.icon.Configure(cfg)

	assert.False(t, h.icon.Active())
	assert.Equal(t, Vec{}, h.icon.Offset())
	assert.Equal(t, Vec{}, h.icon.Target())
	assert.Zero(t, h.subscribers())

	h.loop.Step(999 * time.Millisecond)
	assert.False(t, h.icon.Active())
	h.loop.Step(time.Millisecond)
	assert.True(t, h.icon.Active())

	timers, _ := h.loop.Pending()
	assert.Zero(t, timers, "old timer was cancelled, not left behind")
}

func TestIconTrackingToggleResets(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(DefaultDelay)
	h.feed.Update(200, 100)

	cfg := h.icon.Config()
	cfg.Tracking = false
	h.icon.Configure(cfg)
	assert.Equal(t, Vec{}, h.icon.Offset())
	assert.Zero(t, h.subscribers())

	h.feed.Update(0, 0)
	h.loop.Step(time.Second)
	assert.Equal(t, Vec{}, h.icon.Offset())

	cfg.Tracking = true
	h.icon.Configure(cfg)
	assert.False(t, h.icon.Active(), "delay applies again after re-enabling")
	h.loop.Step(DefaultDelay)
	assert.True(t, h.icon.Active())
}

func TestIconOtherChangesKeepActivation(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(DefaultDelay)
	h.feed.Update(200, 100)

	cfg := h.icon.Config()
	cfg.Size = 48
	cfg.Speed = 12
	h.icon.Configure(cfg)
	assert.True(t, h.icon.Active())
	assert.InDelta(t, 3.6, h.icon.Offset().X, 1e-12)

	h.feed.Update(300, 100)
	assert.InDelta(t, 4, h.icon.Offset().X, 1e-12, "new size clamps the next sample")

	cfg.Smooth = true
	h.icon.Configure(cfg)
	_, frames := h.loop.Pending()
	assert.Equal(t, 1, frames)

	cfg.Smooth = false
	h.icon.Configure(cfg)
	_, frames = h.loop.Pending()
	assert.Zero(t, frames)
}

func TestIconUnmountBeforeDelay(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(100 * time.Millisecond)
	h.icon.Unmount()

	timers, frames := h.loop.Pending()
	assert.Zero(t, timers)
	assert.Zero(t, frames)

	h.loop.Step(time.Second)
	assert.False(t, h.icon.Active())
	assert.False(t, h.icon.delayElapsed)
}

func TestIconUnmountStopsLoopAndSubscription(t *testing.T) {
	t.Parallel()

	cfg := trackingConfig()
	cfg.Smooth = true
	h := newHarness(cfg)
	h.icon.Mount()
	h.loop.Step(DefaultDelay)
	h.feed.Update(200, 100)
	h.loop.Step(frameStep)

	h.icon.Unmount()
	assert.Zero(t, h.subscribers())
	timers, frames := h.loop.Pending()
	assert.Zero(t, timers)
	assert.Zero(t, frames)
	assert.Equal(t, Vec{}, h.icon.Offset())

	// remount starts over
	h.icon.Mount()
	assert.False(t, h.icon.Active())
	h.loop.Step(DefaultDelay)
	assert.True(t, h.icon.Active())
}

// leakyTimers never cancels anything, so only the icon's own guard keeps
// stale callbacks from acting.
type leakyTimers struct {
	pending []func()
}

func (l *leakyTimers) AfterFunc(_ time.Duration, fn func()) func() {
	l.pending = append(l.pending, fn)
	return func() {}
}

func TestIconIgnoresStaleTimerCallbacks(t *testing.T) {
	t.Parallel()

	lt := &leakyTimers{}
	lp := loop.New(epoch)
	feed := event.NewPointerFeed(event.NewDispatcher())
	icon := NewIcon(Env{Pointer: feed, Timers: lt, Frames: lp}, LayoutFunc(func() (Rect, bool) {
		return Rect{W: 24, H: 24}, true
	}), trackingConfig())

	icon.Mount()
	cfg := icon.Config()
	cfg.Delay = 700 * time.Millisecond
	icon.Configure(cfg)
	require.Len(t, lt.pending, 2)

	lt.pending[0]()
	assert.False(t, icon.Active(), "timer from the first activation is stale")
	lt.pending[1]()
	assert.True(t, icon.Active())

	icon.Unmount()
	icon.Mount()
	require.Len(t, lt.pending, 3)
	lt.pending[1]()
	assert.False(t, icon.Active())
	icon.Unmount()
	lt.pending[2]()
	assert.False(t, icon.Active(), "no activation after teardown")
}

func TestIconRequeriesLayout(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(DefaultDelay)

	h.feed.Update(100, 50)
	assert.InDelta(t, -3.6, h.icon.Offset().Y, 1e-12)

	// icon moved below the pointer's row
	h.bounds.Y = 0
	h.feed.Update(100, 51)
	assert.InDelta(t, 3.6, h.icon.Offset().Y, 1e-12)
}

func TestIconMissingLayoutIgnoresSample(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.placed = false
	h.icon.Mount()
	h.loop.Step(DefaultDelay)

	h.feed.Update(500, 500)
	assert.Equal(t, Vec{}, h.icon.Offset())
}

func TestIconNonFiniteLayoutRendersCentered(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.bounds = Rect{X: math.NaN(), Y: 0, W: 24, H: 24}
	h.icon.Mount()
	h.loop.Step(DefaultDelay)

	h.feed.Update(10, 10)
	require.True(t, math.IsNaN(h.icon.Offset().X))

	f := h.icon.Frame()
	assert.Equal(t, ViewCenter, f.Pupil.X)
	assert.Equal(t, ViewCenter, f.Pupil.Y)
}

func TestIconSmoothingRecoversFromNonFiniteTarget(t *testing.T) {
	t.Parallel()

	cfg := trackingConfig()
	cfg.Smooth = true
	h := newHarness(cfg)
	h.bounds = Rect{X: math.Inf(1), W: 24, H: 24}
	h.icon.Mount()
	h.loop.Step(DefaultDelay)

	h.feed.Update(10, 10)
	h.loop.Step(frameStep)
	assert.Equal(t, Vec{}, h.icon.Offset().Finite())
	assert.False(t, math.IsNaN(h.icon.Offset().X))

	h.bounds = Rect{X: 88, Y: 88, W: 24, H: 24}
	h.feed.Update(200, 100)
	h.loop.Step(frameStep)
	assert.Greater(t, h.icon.Offset().X, 0.0)
}

func TestIconToggleKeepsTracking(t *testing.T) {
	t.Parallel()

	h := newHarness(trackingConfig())
	h.icon.Mount()
	h.loop.Step(DefaultDelay)
	h.feed.Update(200, 100)

	assert.True(t, h.icon.Toggle())
	assert.True(t, h.icon.Frame().Closed)
	assert.True(t, h.icon.Active())
	assert.InDelta(t, 3.6, h.icon.Offset().X, 1e-12)

	h.icon.SetClosed(false)
	assert.False(t, h.icon.Frame().Closed)
}

func TestFrameScalesWithSize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Size = 48
	icon := NewIcon(Env{}, nil, cfg)
	f := icon.Frame()
	assert.Equal(t, 48.0, f.Size)
	assert.Equal(t, 2.0, f.Scale())
	assert.Equal(t, 2.5, f.StrokeWidth)
	assert.Equal(t, 4.0, f.Pupil.R)
}

func TestFrameSVG(t *testing.T) {
	t.Parallel()

	open := Frame{Size: 24, StrokeWidth: 2, Pupil: Circle{X: 15.6, Y: 12, R: 2}}
	svg := open.SVG("")
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"`))
	assert.Contains(t, svg, `stroke="currentColor" stroke-width="2"`)
	assert.Contains(t, svg, `<circle cx="15.6" cy="12" r="2"/>`)
	assert.Contains(t, svg, OpenOutlineData[0])
	assert.NotContains(t, svg, "<line")

	closed := Frame{Size: 38, StrokeWidth: 2.5, Closed: true, Pupil: Circle{X: 12, Y: 12, R: 38.0 / 12}}
	svg = closed.SVG("#6b7280")
	assert.Contains(t, svg, `stroke="#6b7280" stroke-width="2.5"`)
	assert.Contains(t, svg, `<line x1="2" x2="22" y1="2" y2="22"/>`)
	assert.Equal(t, len(ClosedData), strings.Count(svg, "<path "))
	assert.NotContains(t, svg, "<circle")
}

func TestGlyphStrokes(t *testing.T) {
	t.Parallel()

	assert.Len(t, Strokes(false), 1)
	assert.Len(t, Strokes(true), 4)
	for _, p := range Strokes(true) {
		assert.NotEmpty(t, p)
	}
}
