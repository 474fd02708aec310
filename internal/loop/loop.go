// Package loop is a single-threaded cooperative scheduler for one-shot timers
// and per-frame callbacks. Nothing runs on its own: the host calls Advance once
// per tick from its UI goroutine and every due callback runs inside that call.
package loop

import (
	"sort"
	"time"
)

type timer struct {
	id        uint64
	due       time.Time
	fn        func()
	cancelled bool
}

type frame struct {
	fn        func()
	cancelled bool
}

// Loop owns the pending timers and frame requests.
type Loop struct {
	now    time.Time
	nextID uint64
	timers []*timer // sorted by due, then by id
	frames []*frame
}

// New creates a loop whose clock starts at start.
func New(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the time of the last Advance.
func (l *Loop) Now() time.Time {
	return l.now
}

// AfterFunc runs fn on the first Advance at or after now+d. The returned
// cancel is idempotent and takes effect immediately.
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	l.nextID++
	t := &timer{id: l.nextID, due: l.now.Add(d), fn: fn}
	idx := sort.Search(len(l.timers), func(i int) bool {
		return l.timers[i].due.After(t.due)
	})
	l.timers = append(l.timers, nil)
	copy(l.timers[idx+1:], l.timers[idx:])
	l.timers[idx] = t

	return func() {
		if t.cancelled {
			return
		}
		t.cancelled = true
		l.removeTimer(t)
	}
}

// RequestFrame runs fn once on the next Advance. Requests made from inside a
// frame callback wait for the following Advance.
func (l *Loop) RequestFrame(fn func()) func() {
	f := &frame{fn: fn}
	l.frames = append(l.frames, f)
	return func() {
		if f.cancelled {
			return
		}
		f.cancelled = true
		for i, pending := range l.frames {
			if pending == f {
				l.frames = append(l.frames[:i], l.frames[i+1:]...)
				break
			}
		}
	}
}

// Advance moves the clock to now (never backwards), fires timers that were
// due, then runs the frame callbacks pending at that point, including ones
// requested by those timers.
func (l *Loop) Advance(now time.Time) {
	if now.After(l.now) {
		l.now = now
	}

	n := sort.Search(len(l.timers), func(i int) bool {
		return l.timers[i].due.After(l.now)
	})
	due := make([]*timer, n)
	copy(due, l.timers[:n])
	l.timers = append(l.timers[:0], l.timers[n:]...)
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
	}

	batch := l.frames
	l.frames = nil
	for _, f := range batch {
		if f.cancelled {
			continue
		}
		f.cancelled = true
		f.fn()
	}
}

// Step advances the clock by d.
func (l *Loop) Step(d time.Duration) {
	l.Advance(l.now.Add(d))
}

// Pending reports how many timers and frame callbacks are waiting.
func (l *Loop) Pending() (timers, frames int) {
	return len(l.timers), len(l.frames)
}

func (l *Loop) removeTimer(t *timer) {
	for i, pending := range l.timers {
		if pending == t {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}
