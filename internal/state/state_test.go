package state

import (
	"testing"
	"time"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/defs"
	"go-eye-demo/internal/event"
	"go-eye-demo/internal/eye"
	"go-eye-demo/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sm  *StateMachine
	res *Resources
	s   *ShowcaseState
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	presets, err := defs.LoadPresets("")
	require.NoError(t, err)

	f := &fixture{sm: NewStateMachine(), now: time.Unix(1000, 0)}
	f.res = &Resources{
		Settings: config.Settings{Tracking: true, DelayMs: 500, Smooth: true, Speed: 1, Size: 38},
		Presets:  presets,
		Now:      func() time.Time { return f.now },
	}
	f.s = NewShowcaseState(f.sm, f.res)
	f.sm.SetState(f.s)
	return f
}

// tick advances the clock by d and runs one host tick with the given input.
func (f *fixture) tick(d time.Duration, in ui.Input) bool {
	f.now = f.now.Add(d)
	return f.s.handle(in, f.now)
}

func click(x, y float64) ui.Input {
	return ui.Input{X: x, Y: y, Down: true, JustPressed: true}
}

func TestShowcaseMountsIconsOnEnter(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	timers, frames := f.s.loop.Pending()
	assert.Equal(t, 2, timers, "one activation delay per icon")
	assert.Zero(t, frames)
	assert.True(t, f.s.icon.Icon.Mounted())
	assert.True(t, f.s.password.Eye.Icon.Mounted())
}

func TestShowcaseTracksPointerAfterDelay(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.tick(0, ui.Input{X: 600, Y: 190})
	assert.False(t, f.s.password.Eye.Icon.Active())

	f.tick(500*time.Millisecond, ui.Input{X: 600, Y: 190})
	require.True(t, f.s.password.Eye.Icon.Active())
	require.True(t, f.s.icon.Icon.Active())

	f.tick(16*time.Millisecond, ui.Input{X: 601, Y: 190})

	// password eye sits left of the pointer, showcase eye to its right
	pw := f.s.password.Eye.Icon
	assert.InDelta(t, 3.6, pw.Target().X, 1e-9)
	assert.Greater(t, pw.Offset().X, 0.0)
	assert.Less(t, pw.Offset().X, 3.6, "smoothing eases toward the target")
	assert.Less(t, f.s.icon.Icon.Target().X, 0.0)
}

func TestShowcasePresetsCycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var names []any
	f.s.dispatcher.Subscribe(event.PresetSelected, event.ListenerFunc(func(e event.Event) {
		names = append(names, e.Data)
	}))

	btn := f.s.presetButton.Rect
	x, y := float64(btn.Min.X+5), float64(btn.Min.Y+5)

	f.tick(0, click(x, y))
	cfg := f.s.icon.Icon.Config()
	assert.Equal(t, 24.0, cfg.Size)
	assert.Equal(t, 1, cfg.Speed)
	assert.Equal(t, "Preset: Password field", f.s.status)

	f.tick(0, ui.Input{X: x, Y: y})
	f.tick(0, click(x, y))
	f.tick(0, ui.Input{X: x, Y: y})
	f.tick(0, click(x, y))
	cfg = f.s.icon.Icon.Config()
	assert.Equal(t, 48.0, cfg.Size)
	assert.False(t, cfg.Smooth)
	assert.Zero(t, cfg.Delay)
	assert.Equal(t, config.PadSize(48), f.s.icon.Pad)
	assert.Equal(t, []any{"Password field", "Slow follower", "Instant tracking"}, names)

	// zero delay activates on the next advance
	f.tick(0, ui.Input{X: x, Y: y})
	assert.True(t, f.s.icon.Icon.Active())
}

func TestShowcaseFollowToggleDisablesTracking(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	sizeTop := f.s.size.Rect.Min.Y

	sw := f.s.follow.Rect
	f.tick(0, click(float64(sw.Max.X-10), float64(sw.Min.Y+5)))

	assert.False(t, f.s.follow.On)
	assert.False(t, f.s.icon.Icon.Config().Tracking)
	assert.Less(t, f.s.size.Rect.Min.Y, sizeTop, "hidden controls free their rows")

	f.tick(time.Second, ui.Input{X: 0, Y: 0})
	assert.False(t, f.s.icon.Icon.Active())
	assert.True(t, f.s.password.Eye.Icon.Active(), "password field is configured separately")
}

func TestShowcaseIconClickToggles(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cx, cy := padCenter()
	f.tick(0, click(cx, cy))
	assert.True(t, f.s.icon.Icon.Config().Closed)
	assert.Equal(t, "Eye closed", f.s.status)
}

func TestShowcaseExitCancelsEverything(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.tick(500*time.Millisecond, ui.Input{X: 1, Y: 1})
	_, frames := f.s.loop.Pending()
	require.Positive(t, frames)

	f.sm.Shutdown()
	timers, frames := f.s.loop.Pending()
	assert.Zero(t, timers)
	assert.Zero(t, frames)
	assert.Zero(t, f.s.dispatcher.Count(event.PointerMoved))
	assert.Zero(t, f.s.dispatcher.Count(event.IconToggled))
	assert.False(t, f.s.icon.Icon.Mounted())
}

func TestSetStateIgnoresActiveState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.tick(500*time.Millisecond, ui.Input{X: 1, Y: 1})
	require.True(t, f.s.icon.Icon.Active())

	f.sm.SetState(f.s)
	assert.Same(t, f.s, f.sm.Current())
	assert.True(t, f.s.icon.Icon.Active(), "re-setting the active state keeps activation")
	assert.Equal(t, 1, f.s.dispatcher.Count(event.IconToggled))
}

func TestDocsRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	docs := f.s.docsButton.Rect
	require.True(t, f.tick(0, click(float64(docs.Min.X+5), float64(docs.Min.Y+5))))

	d := NewDocsState(f.sm, f.res, f.s)
	f.sm.SetState(d)
	assert.Same(t, d, f.sm.Current())
	assert.False(t, f.s.icon.Icon.Mounted())

	// time spent on the docs page must not count toward the activation delay
	f.now = f.now.Add(10 * time.Second)
	back := d.back.Rect
	require.True(t, d.handle(click(float64(back.Min.X+5), float64(back.Min.Y+5))))
	f.sm.SetState(d.previousState)
	assert.True(t, f.s.icon.Icon.Mounted())
	timers, _ := f.s.loop.Pending()
	assert.Equal(t, 2, timers, "remount restarts both activation delays")

	f.tick(16*time.Millisecond, ui.Input{X: 900, Y: 220})
	assert.False(t, f.s.icon.Icon.Active())
	assert.False(t, f.s.password.Eye.Icon.Active())
	assert.Equal(t, eye.Vec{}, f.s.icon.Icon.Offset())

	f.tick(500*time.Millisecond, ui.Input{X: 900, Y: 220})
	assert.True(t, f.s.icon.Icon.Active())
}

func TestReference(t *testing.T) {
	t.Parallel()

	require.Len(t, Reference, 2)
	for _, sec := range Reference {
		assert.NotEmpty(t, sec.Props, sec.Title)
	}
}
