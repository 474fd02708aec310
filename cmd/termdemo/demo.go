package main

import (
	"fmt"
	"image"
	"math"
	"time"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/defs"
	"go-eye-demo/internal/event"
	"go-eye-demo/internal/eye"
	"go-eye-demo/internal/loop"
	"go-eye-demo/internal/termui"

	"github.com/gdamore/tcell/v2"
)

const (
	delayStep = 100 * time.Millisecond
	sizeStep  = config.EyeSizeStep
	helpLine  = "t track  s smooth  +/- speed  [/] delay  </> size  p preset  space toggle  q quit"
)

// Demo is the terminal host: it owns the screen, the scheduler and one icon.
type Demo struct {
	screen     tcell.Screen
	loop       *loop.Loop
	dispatcher *event.Dispatcher
	feed       *event.PointerFeed
	icon       *eye.Icon
	sound      *clicker

	presets     []defs.Preset
	presetIndex int
	status      string

	origin     image.Point // top-left cell of the icon
	buttonDown bool

	iconStyle tcell.Style
	textStyle tcell.Style
	mutedText tcell.Style
}

func NewDemo(screen tcell.Screen, cfg eye.Config, presets []defs.Preset, sound *clicker, start time.Time) *Demo {
	dispatcher := event.NewDispatcher()
	d := &Demo{
		screen:      screen,
		loop:        loop.New(start),
		dispatcher:  dispatcher,
		feed:        event.NewPointerFeed(dispatcher),
		sound:       sound,
		presets:     presets,
		presetIndex: -1,
		iconStyle:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
		textStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		mutedText:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
	env := eye.Env{Pointer: d.feed, Timers: d.loop, Frames: d.loop}
	d.icon = eye.NewIcon(env, eye.LayoutFunc(d.bounds), cfg)

	dispatcher.Subscribe(event.IconToggled, event.ListenerFunc(func(e event.Event) {
		closed, _ := e.Data.(bool)
		d.sound.Click(closed)
	}))
	dispatcher.Subscribe(event.PresetSelected, event.ListenerFunc(func(e event.Event) {
		d.status = fmt.Sprintf("preset: %v", e.Data)
	}))

	d.layout()
	return d
}

// cells is the icon footprint on screen.
func (d *Demo) cells() (cols, rows int) {
	cols = int(math.Round(d.icon.Config().Size))
	return cols, (cols + 1) / 2
}

func (d *Demo) layout() {
	w, h := d.screen.Size()
	cols, rows := d.cells()
	d.origin = image.Pt(max(0, (w-cols)/2), max(0, (h-3-rows)/2))
}

// bounds reports the icon square in pixel space, where a cell row is
// TermCellAspect pixels tall.
func (d *Demo) bounds() (eye.Rect, bool) {
	size := d.icon.Config().Size
	return eye.Rect{
		X: float64(d.origin.X),
		Y: float64(d.origin.Y) * config.TermCellAspect,
		W: size,
		H: size,
	}, true
}

func (d *Demo) overIcon(col, row int) bool {
	cols, rows := d.cells()
	return image.Pt(col, row).In(image.Rect(d.origin.X, d.origin.Y, d.origin.X+cols, d.origin.Y+rows))
}

func (d *Demo) Start() { d.icon.Mount() }

func (d *Demo) Stop() { d.icon.Unmount() }

func (d *Demo) toggle() {
	closed := d.icon.Toggle()
	d.dispatcher.Dispatch(event.Event{Type: event.IconToggled, Data: closed})
}

func (d *Demo) reconfigure(change func(*eye.Config)) {
	cfg := d.icon.Config()
	change(&cfg)
	cfg.Size = math.Min(math.Max(cfg.Size, config.MinEyeSize), config.MaxEyeSize)
	d.icon.Configure(cfg)
	d.layout()
	d.screen.Clear()
}

func (d *Demo) nextPreset() {
	if len(d.presets) == 0 {
		return
	}
	d.presetIndex = (d.presetIndex + 1) % len(d.presets)
	p := d.presets[d.presetIndex]
	d.reconfigure(func(c *eye.Config) {
		closed := c.Closed
		*c = p.EyeConfig()
		c.Closed = closed
	})
	d.dispatcher.Dispatch(event.Event{Type: event.PresetSelected, Data: p.Name})
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (d *Demo) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			d.toggle()
		case 't':
			d.reconfigure(func(c *eye.Config) { c.Tracking = !c.Tracking })
		case 's':
			d.reconfigure(func(c *eye.Config) { c.Smooth = !c.Smooth })
		case '+', '=':
			d.reconfigure(func(c *eye.Config) { c.Speed++ })
		case '-':
			d.reconfigure(func(c *eye.Config) { c.Speed-- })
		case ']':
			d.reconfigure(func(c *eye.Config) { c.Delay = min(c.Delay+delayStep, config.MaxDelayMs*time.Millisecond) })
		case '[':
			d.reconfigure(func(c *eye.Config) { c.Delay = max(c.Delay-delayStep, 0) })
		case '>', '.':
			d.reconfigure(func(c *eye.Config) { c.Size += sizeStep })
		case '<', ',':
			d.reconfigure(func(c *eye.Config) { c.Size -= sizeStep })
		case 'p':
			d.nextPreset()
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		d.feed.Update(termui.CellToPixel(col, row, config.TermCellAspect))
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !d.buttonDown && d.overIcon(col, row) {
			d.toggle()
		}
		d.buttonDown = down

	case *tcell.EventResize:
		d.layout()
		d.screen.Sync()
	}
	return true
}

// Tick fires due timers and frames, then redraws.
func (d *Demo) Tick(now time.Time) {
	d.loop.Advance(now)
	d.draw()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (d *Demo) draw() {
	bitmap := termui.Rasterize(d.icon.Frame())
	termui.DrawBitmap(d.screen, bitmap, d.origin.X, d.origin.Y, d.iconStyle, tcell.StyleDefault)

	_, h := d.screen.Size()
	cfg := d.icon.Config()
	summary := fmt.Sprintf("tracking %s  delay %dms  smooth %s  speed %d  size %gpx  %s",
		onOff(cfg.Tracking), cfg.Delay.Milliseconds(), onOff(cfg.Smooth), cfg.Speed, cfg.Size, d.status)
	clearLine(d.screen, h-2)
	termui.DrawText(d.screen, 1, h-2, summary, d.textStyle)
	clearLine(d.screen, h-1)
	termui.DrawText(d.screen, 1, h-1, helpLine, d.mutedText)

	d.screen.Show()
}

func clearLine(screen tcell.Screen, row int) {
	w, _ := screen.Size()
	for col := 0; col < w; col++ {
		screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}
