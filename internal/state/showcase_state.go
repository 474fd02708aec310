// internal/state/showcase_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strconv"
	"time"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/defs"
	"go-eye-demo/internal/event"
	"go-eye-demo/internal/eye"
	"go-eye-demo/internal/loop"
	"go-eye-demo/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*ShowcaseState)(nil)

// ShowcaseState is the main page: a password field and a configurable eye.
type ShowcaseState struct {
	sm  *StateMachine
	res *Resources

	loop       *loop.Loop
	dispatcher *event.Dispatcher
	feed       *event.PointerFeed

	password *ui.PasswordInput
	icon     *ui.IconView

	follow *ui.Toggle
	delay  *ui.Slider
	smooth *ui.Toggle
	speed  *ui.Slider
	size   *ui.Slider

	presetButton *ui.Button
	docsButton   *ui.Button
	presetIndex  int

	status      string
	inputBuf    []rune
	unsubscribe []func()
}

func NewShowcaseState(sm *StateMachine, res *Resources) *ShowcaseState {
	dispatcher := event.NewDispatcher()
	s := &ShowcaseState{
		sm:          sm,
		res:         res,
		loop:        loop.New(res.now()),
		dispatcher:  dispatcher,
		feed:        event.NewPointerFeed(dispatcher),
		presetIndex: -1,
		inputBuf:    make([]rune, 0, 16),
	}
	env := eye.Env{Pointer: s.feed, Timers: s.loop, Frames: s.loop}
	palette := Palette()

	passwordCfg := ui.PasswordConfig()
	if p, ok := defs.Find(res.Presets, "password"); ok {
		passwordCfg = p.EyeConfig()
	}
	left := leftCard()
	inputTop := left.Min.Y + 100
	s.password = ui.NewPasswordInput(
		image.Rect(left.Min.X+config.CardPadding, inputTop, left.Max.X-config.CardPadding, inputTop+config.InputHeight),
		env, passwordCfg, palette, dispatcher)
	s.password.SetValue("P@ssw0rd123!")

	cfg := res.Settings.EyeConfig()
	s.icon = ui.NewIconView(env, cfg, palette, dispatcher)

	s.follow = ui.NewToggle(image.Rectangle{}, "Eye follows mouse", cfg.Tracking)
	s.delay = ui.NewSlider(image.Rectangle{}, "Follow delay (ms)",
		config.MinDelayMs, config.MaxDelayMs, config.DelayStepMs, float64(cfg.Delay/time.Millisecond))
	s.smooth = ui.NewToggle(image.Rectangle{}, "Slow movement", cfg.Smooth)
	s.speed = ui.NewSlider(image.Rectangle{}, "Movement speed", eye.MinSpeed, eye.MaxSpeed, 1, float64(cfg.Speed))
	s.speed.MinLabel, s.speed.MaxLabel = "Slower", "Faster"
	s.size = ui.NewSlider(image.Rectangle{}, "Eye Size", config.MinEyeSize, config.MaxEyeSize, config.EyeSizeStep, cfg.Size)
	s.size.Format = func(v float64) string { return strconv.Itoa(int(v)) + "px" }

	footer := left.Max.Y - config.CardPadding - config.ButtonHeight
	s.presetButton = ui.NewButton(image.Rect(left.Min.X+config.CardPadding, footer, left.Min.X+config.CardPadding+150, footer+config.ButtonHeight), "Next preset")
	s.docsButton = ui.NewButton(image.Rect(left.Max.X-config.CardPadding-150, footer, left.Max.X-config.CardPadding, footer+config.ButtonHeight), "Props reference")

	s.applyControls()
	s.layout()
	return s
}

func leftCard() image.Rectangle {
	return image.Rect(config.CardMargin, config.CardTop, config.CardMargin+config.CardWidth, config.CardBottom)
}

func rightCard() image.Rectangle {
	return image.Rect(config.ScreenWidth-config.CardMargin-config.CardWidth, config.CardTop, config.ScreenWidth-config.CardMargin, config.CardBottom)
}

// padCenter is the center of the eye's round pad in the right card.
func padCenter() (float64, float64) {
	r := rightCard()
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y) + 150
}

func (s *ShowcaseState) Enter() {
	// Activation delays count from now, not from the last tick before
	// another state took over.
	s.loop.Advance(s.res.now())
	s.password.Eye.Icon.Mount()
	s.icon.Icon.Mount()

	s.unsubscribe = append(s.unsubscribe,
		s.dispatcher.Subscribe(event.IconToggled, event.ListenerFunc(func(e event.Event) {
			if closed, _ := e.Data.(bool); closed {
				s.status = "Eye closed"
			} else {
				s.status = "Eye open"
			}
		})),
		s.dispatcher.Subscribe(event.PasswordRevealed, event.ListenerFunc(func(e event.Event) {
			if revealed, _ := e.Data.(bool); revealed {
				s.status = "Password shown"
			} else {
				s.status = "Password hidden"
			}
		})),
		s.dispatcher.Subscribe(event.PresetSelected, event.ListenerFunc(func(e event.Event) {
			s.status = fmt.Sprintf("Preset: %v", e.Data)
			log.Printf("preset %v selected", e.Data)
		})),
	)
}

func (s *ShowcaseState) Update(deltaTime float64) {
	in := ui.PollInput(s.inputBuf)
	s.inputBuf = in.Chars
	if s.handle(in, s.res.now()) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.sm.SetState(NewDocsState(s.sm, s.res, s))
	}
}

// handle runs one tick: pointer first, then controls, then the loop's timers
// and frames. It reports whether the docs page was requested.
func (s *ShowcaseState) handle(in ui.Input, now time.Time) bool {
	s.feed.Update(in.X, in.Y)

	s.password.Update(in)
	s.icon.Update(in)

	changed := s.follow.Update(in)
	if s.follow.On {
		changed = s.delay.Update(in) || changed
		changed = s.smooth.Update(in) || changed
		if s.smooth.On {
			changed = s.speed.Update(in) || changed
		}
	}
	changed = s.size.Update(in) || changed
	if changed {
		s.applyControls()
	}

	if s.presetButton.Update(in) {
		s.nextPreset()
	}
	docs := s.docsButton.Update(in)

	s.layout()
	s.loop.Advance(now)
	return docs
}

// applyControls copies control values into the eye config.
func (s *ShowcaseState) applyControls() {
	cfg := s.icon.Icon.Config()
	cfg.Tracking = s.follow.On
	cfg.Delay = time.Duration(s.delay.Value) * time.Millisecond
	cfg.Smooth = s.smooth.On
	cfg.Speed = int(s.speed.Value)
	cfg.Size = s.size.Value
	s.icon.Icon.Configure(cfg)
	s.icon.Pad = config.PadSize(cfg.Size)
}

func (s *ShowcaseState) nextPreset() {
	if len(s.res.Presets) == 0 {
		return
	}
	s.presetIndex = (s.presetIndex + 1) % len(s.res.Presets)
	p := s.res.Presets[s.presetIndex]

	s.follow.On = p.Tracking
	s.delay.Set(float64(p.DelayMs))
	s.smooth.On = p.Smooth
	s.speed.Set(float64(p.Speed))
	s.size.Set(p.Size)
	s.applyControls()

	s.dispatcher.Dispatch(event.Event{Type: event.PresetSelected, Data: p.Name})
}

// layout positions the controls. Hidden ones take no rows.
func (s *ShowcaseState) layout() {
	s.icon.Place(padCenter())

	card := rightCard()
	row := func(y, h int) image.Rectangle {
		return image.Rect(card.Min.X+config.CardPadding, y, card.Max.X-config.CardPadding, y+h)
	}

	y := card.Min.Y + 260
	s.follow.Rect = row(y, config.ControlHeight)
	y += config.ControlHeight + config.ControlSpacing
	if s.follow.On {
		s.delay.Rect = row(y, config.SliderHeight)
		y += config.SliderHeight + config.ControlSpacing
		s.smooth.Rect = row(y, config.ControlHeight)
		y += config.ControlHeight + config.ControlSpacing
		if s.smooth.On {
			s.speed.Rect = row(y, config.SliderHeight)
			y += config.SliderHeight + 2*config.ControlSpacing
		}
	}
	s.size.Rect = row(y+config.ControlSpacing, config.SliderHeight)
}

func (s *ShowcaseState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawText(screen, "Eye Components", s.res.TitleFace, config.CardMargin, config.TitleY, config.TextColor)

	left := leftCard()
	drawCard(screen, left)
	x := left.Min.X + config.CardPadding
	drawText(screen, "Password Input", s.res.TitleFace, x, left.Min.Y+40, config.TextColor)
	drawText(screen, "Password input with eye tracking", s.res.Face, x, left.Min.Y+64, config.MutedTextColor)
	drawText(screen, "Password", s.res.Face, x, left.Min.Y+92, config.TextColor)
	s.password.Draw(screen, s.res.Face, s.res.Renderer)
	drawText(screen, "The eye icon follows your mouse cursor", s.res.Face, x, left.Min.Y+170, config.MutedTextColor)
	drawText(screen, "with a smooth animation.", s.res.Face, x, left.Min.Y+188, config.MutedTextColor)
	if s.status != "" {
		drawText(screen, s.status, s.res.Face, x, s.presetButton.Rect.Min.Y-config.ControlSpacing, config.MutedTextColor)
	}
	s.presetButton.Draw(screen, s.res.Face)
	s.docsButton.Draw(screen, s.res.Face)

	right := rightCard()
	drawCard(screen, right)
	x = right.Min.X + config.CardPadding
	drawText(screen, "Eye Movement Icon", s.res.TitleFace, x, right.Min.Y+40, config.TextColor)
	drawText(screen, "Customize the eye icon appearance and behavior", s.res.Face, x, right.Min.Y+64, config.MutedTextColor)
	s.icon.Draw(screen, s.res.Renderer)
	hint := "Click the icon to toggle between states"
	drawText(screen, hint, s.res.Face, (right.Min.X+right.Max.X-font.MeasureString(s.res.Face, hint).Ceil())/2, right.Min.Y+240, config.MutedTextColor)

	s.follow.Draw(screen, s.res.Face)
	if s.follow.On {
		s.delay.Draw(screen, s.res.Face)
		s.smooth.Draw(screen, s.res.Face)
		if s.smooth.On {
			s.speed.Draw(screen, s.res.Face)
		}
	}
	sep := float32(s.size.Rect.Min.Y - config.ControlSpacing/2)
	vector.StrokeLine(screen, float32(right.Min.X+config.CardPadding), sep, float32(right.Max.X-config.CardPadding), sep, 1, config.BorderColor, true)
	s.size.Draw(screen, s.res.Face)
}

func (s *ShowcaseState) Exit() {
	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}
	s.unsubscribe = nil
	s.password.Eye.Icon.Unmount()
	s.icon.Icon.Unmount()
}

func drawCard(screen *ebiten.Image, r image.Rectangle) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.CardColor, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.BorderColor, true)
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, baseline int, clr color.Color) {
	text.Draw(screen, s, face, x, baseline, clr)
}
