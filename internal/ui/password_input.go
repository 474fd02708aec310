package ui

import (
	"image"
	"strings"
	"unicode"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/event"
	"go-eye-demo/internal/eye"
	"go-eye-demo/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const maskRune = '•'

// PasswordConfig is the eye configuration of the password field's reveal button.
func PasswordConfig() eye.Config {
	return eye.Config{
		Tracking: true,
		Delay:    eye.DefaultDelay,
		Smooth:   true,
		Speed:    1,
		Size:     config.PasswordEyeSize,
	}
}

// PasswordInput is a password field with an eye button at its right edge.
// The eye is closed while the password is shown in plain text.
type PasswordInput struct {
	Rect        image.Rectangle
	Placeholder string
	Eye         *IconView

	dispatcher *event.Dispatcher
	value      []rune
	focused    bool
	hovered    bool
}

func NewPasswordInput(rect image.Rectangle, env eye.Env, cfg eye.Config, palette render.Palette, dispatcher *event.Dispatcher) *PasswordInput {
	p := &PasswordInput{
		Rect:        rect,
		Placeholder: "Enter your password",
		Eye:         NewIconView(env, cfg, palette, nil),
		dispatcher:  dispatcher,
	}
	p.layout()
	return p
}

// layout places the eye near the right edge.
func (p *PasswordInput) layout() {
	size := p.Eye.Icon.Config().Size
	x := float64(p.Rect.Max.X) - config.InputIconInset - size/2
	y := float64(p.Rect.Min.Y+p.Rect.Max.Y) / 2
	p.Eye.Place(x, y)
}

// Move moves the field and its eye.
func (p *PasswordInput) Move(rect image.Rectangle) {
	p.Rect = rect
	p.layout()
}

func (p *PasswordInput) Value() string { return string(p.value) }

func (p *PasswordInput) SetValue(s string) { p.value = []rune(s) }

// Revealed reports whether the password is shown as plain text.
func (p *PasswordInput) Revealed() bool { return p.Eye.Icon.Config().Closed }

func (p *PasswordInput) Focused() bool { return p.focused }

// Display is the text as drawn: masked unless revealed.
func (p *PasswordInput) Display() string {
	if p.Revealed() {
		return string(p.value)
	}
	return strings.Repeat(string(maskRune), len(p.value))
}

func (p *PasswordInput) Update(in Input) {
	if p.Eye.Update(in) {
		p.dispatcher.Dispatch(event.Event{Type: event.PasswordRevealed, Data: p.Revealed()})
		return
	}

	p.hovered = in.Over(p.Rect)
	if in.JustPressed {
		p.focused = p.hovered
	}
	if !p.focused {
		return
	}
	for _, r := range in.Chars {
		if unicode.IsPrint(r) {
			p.value = append(p.value, r)
		}
	}
	if in.Backspace && len(p.value) > 0 {
		p.value = p.value[:len(p.value)-1]
	}
}

func (p *PasswordInput) Draw(screen *ebiten.Image, face font.Face, r *render.IconRenderer) {
	x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
	w, h := float32(p.Rect.Dx()), float32(p.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.CardColor, true)
	border := config.BorderColor
	if p.focused {
		border = config.FocusColor
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, true)

	size := p.Eye.Icon.Config().Size
	textRect := p.Rect.Inset(config.InputIconInset)
	textRect.Min.Y, textRect.Max.Y = p.Rect.Min.Y, p.Rect.Max.Y
	textRect.Max.X = p.Rect.Max.X - 2*config.InputIconInset - int(size)

	if len(p.value) == 0 && !p.focused {
		drawLabel(screen, p.Placeholder, face, textRect, config.MutedTextColor)
	} else {
		shown := fitTail(face, p.Display(), textRect.Dx())
		drawLabel(screen, shown, face, textRect, config.TextColor)
		if p.focused {
			cx := float32(textRect.Min.X + textWidth(face, shown) + 1)
			vector.StrokeLine(screen, cx, y+h/4, cx, y+h*3/4, 1, config.TextColor, true)
		}
	}

	p.Eye.Draw(screen, r)
}

// fitTail drops leading runes until s fits in width.
func fitTail(face font.Face, s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && textWidth(face, string(runes)) > width {
		runes = runes[1:]
	}
	return string(runes)
}
