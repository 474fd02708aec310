package eye

import "time"

// PointerSource delivers global pointer positions in viewport coordinates.
type PointerSource interface {
	SubscribePointer(fn func(x, y float64)) (unsubscribe func())
}

// Timers schedules one-shot delayed callbacks.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Frames schedules a callback for the next frame. Callbacks that want to keep
// animating request again from inside the callback.
type Frames interface {
	RequestFrame(fn func()) (cancel func())
}

// Layout reports where the icon currently sits on screen. ok is false when
// the icon has not been placed yet.
type Layout interface {
	Bounds() (r Rect, ok bool)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func() (Rect, bool)

// Bounds calls f.
func (f LayoutFunc) Bounds() (Rect, bool) { return f() }

// Env bundles the capabilities an icon needs from its host. Cancel and
// unsubscribe functions must be synchronous and safe to call twice.
type Env struct {
	Pointer PointerSource
	Timers  Timers
	Frames  Frames
}
