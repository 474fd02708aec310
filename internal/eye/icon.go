// Package eye implements the pointer-tracking eye icon: delayed activation,
// pointer-to-pupil offset clamping and exponential smoothing driven by a
// host-provided frame loop.
//
// An Icon is not safe for concurrent use. All callbacks it registers are
// expected to run on the host's single UI goroutine.
package eye

// Icon is one mounted eye. Zero offsets are rendered until tracking is on and
// the activation delay has elapsed.
type Icon struct {
	env    Env
	layout Layout
	cfg    Config

	mounted      bool
	delayElapsed bool
	target       Vec
	current      Vec

	// generation invalidates timer callbacks armed for an older activation.
	generation  uint64
	cancelDelay func()
	unsubscribe func()
	cancelFrame func()
}

// NewIcon creates an unmounted icon.
func NewIcon(env Env, layout Layout, cfg Config) *Icon {
	return &Icon{
		env:    env,
		layout: layout,
		cfg:    cfg.Normalize(),
	}
}

// Mount starts the activation sequence.
func (i *Icon) Mount() {
	if i.mounted {
		return
	}
	i.mounted = true
	i.resetActivation()
}

// Unmount cancels the pending timer, pointer subscription and frame loop and
// discards all motion state.
func (i *Icon) Unmount() {
	if !i.mounted {
		return
	}
	i.mounted = false
	i.generation++
	i.stopDelay()
	i.delayElapsed = false
	i.target, i.current = Vec{}, Vec{}
	i.sync()
}

// Mounted reports whether the icon is mounted.
func (i *Icon) Mounted() bool { return i.mounted }

// Config returns the normalized configuration in effect.
func (i *Icon) Config() Config { return i.cfg }

// Configure applies a new configuration. Changing Tracking or Delay restarts
// activation from scratch; other fields take effect in place.
func (i *Icon) Configure(cfg Config) {
	cfg = cfg.Normalize()
	prev := i.cfg
	i.cfg = cfg
	if !i.mounted {
		return
	}
	if prev.Tracking != cfg.Tracking || prev.Delay != cfg.Delay {
		i.resetActivation()
		return
	}
	i.sync()
}

// SetClosed selects the glyph. Toggling is the host's decision.
func (i *Icon) SetClosed(closed bool) {
	i.cfg.Closed = closed
}

// Toggle flips the glyph and returns the new closed state.
func (i *Icon) Toggle() bool {
	i.cfg.Closed = !i.cfg.Closed
	return i.cfg.Closed
}

// Active reports whether the pupil is currently following the pointer.
func (i *Icon) Active() bool {
	return i.mounted && i.cfg.Tracking && i.delayElapsed
}

// Offset is the rendered pupil offset before the non-finite guard.
func (i *Icon) Offset() Vec { return i.current }

// Target is the clamped offset toward the last pointer sample.
func (i *Icon) Target() Vec { return i.target }

// Frame returns the render snapshot for the current state.
func (i *Icon) Frame() Frame {
	var off Vec
	if i.Active() {
		off = i.current.Finite()
	}
	size := i.cfg.Size
	return Frame{
		Size:        size,
		StrokeWidth: StrokeWidth(size),
		Closed:      i.cfg.Closed,
		Pupil: Circle{
			X: ViewCenter + off.X,
			Y: ViewCenter + off.Y,
			R: PupilRadius(size),
		},
	}
}

func (i *Icon) resetActivation() {
	i.generation++
	i.stopDelay()
	i.delayElapsed = false
	i.target, i.current = Vec{}, Vec{}
	i.sync()

	if !i.cfg.Tracking {
		return
	}
	gen := i.generation
	i.cancelDelay = i.env.Timers.AfterFunc(i.cfg.Delay, func() {
		if !i.mounted || gen != i.generation {
			return
		}
		i.cancelDelay = nil
		i.delayElapsed = true
		i.sync()
	})
}

// sync subscribes to the pointer and runs the frame loop exactly while their
// guards hold.
func (i *Icon) sync() {
	active := i.Active()
	switch {
	case active && i.unsubscribe == nil:
		i.unsubscribe = i.env.Pointer.SubscribePointer(i.onPointer)
	case !active && i.unsubscribe != nil:
		i.unsubscribe()
		i.unsubscribe = nil
	}

	smoothing := active && i.cfg.Smooth
	switch {
	case smoothing && i.cancelFrame == nil:
		i.requestFrame()
	case !smoothing && i.cancelFrame != nil:
		i.cancelFrame()
		i.cancelFrame = nil
	}
}

func (i *Icon) stopDelay() {
	if i.cancelDelay != nil {
		i.cancelDelay()
		i.cancelDelay = nil
	}
}

func (i *Icon) onPointer(x, y float64) {
	if !i.Active() {
		return
	}
	// Layout can move between samples, so bounds are queried every time.
	b, ok := i.layout.Bounds()
	if !ok {
		return
	}
	c := b.Center()
	i.target = TargetOffset(x-c.X, y-c.Y, MaxMovement(i.cfg.Size))
	if !i.cfg.Smooth {
		i.current = i.target
	}
}

func (i *Icon) requestFrame() {
	i.cancelFrame = i.env.Frames.RequestFrame(i.onFrame)
}

func (i *Icon) onFrame() {
	i.cancelFrame = nil
	if !i.Active() || !i.cfg.Smooth {
		return
	}
	i.current = Ease(i.current, i.target, EaseFactor(i.cfg.Speed)).Finite()
	i.requestFrame()
}
