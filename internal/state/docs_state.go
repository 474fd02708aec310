// internal/state/docs_state.go
package state

import (
	"image"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*DocsState)(nil)

// Prop is one row of a props table.
type Prop struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// Section is one documented component.
type Section struct {
	Title   string
	Summary string
	Props   []Prop
}

// Reference lists the configuration of both widgets.
var Reference = []Section{
	{
		Title:   "PasswordInput",
		Summary: "Text field with an eye button that shows or hides the password.",
		Props: []Prop{
			{"Tracking", "bool", "true", "Eye follows the pointer"},
			{"Delay", "time.Duration", "500ms", "Wait before the eye starts following"},
			{"Smooth", "bool", "true", "Ease toward the pointer instead of snapping"},
			{"Speed", "int", "1", "Easing speed, 1 (slow) to 20 (fast)"},
			{"Size", "float64", "24", "Icon edge length in pixels"},
		},
	},
	{
		Title:   "Icon",
		Summary: "Standalone eye that toggles between open and closed states.",
		Props: []Prop{
			{"Closed", "bool", "false", "Draw the slashed eye"},
			{"Tracking", "bool", "false", "Eye follows the pointer"},
			{"Delay", "time.Duration", "500ms", "Wait before the eye starts following"},
			{"Smooth", "bool", "false", "Ease toward the pointer instead of snapping"},
			{"Speed", "int", "5", "Easing speed, 1 (slow) to 20 (fast)"},
			{"Size", "float64", "24", "Icon edge length in pixels"},
		},
	},
}

const rowHeight = 24

// DocsState lists component props and returns to the saved showcase.
type DocsState struct {
	sm            *StateMachine
	res           *Resources
	previousState State
	back          *ui.Button
}

func NewDocsState(sm *StateMachine, res *Resources, prevState State) *DocsState {
	footer := config.CardBottom - config.CardPadding - config.ButtonHeight
	return &DocsState{
		sm:            sm,
		res:           res,
		previousState: prevState,
		back: ui.NewButton(image.Rect(config.CardMargin+config.CardPadding, footer,
			config.CardMargin+config.CardPadding+150, footer+config.ButtonHeight), "Back to demo"),
	}
}

func (d *DocsState) Enter() {}

func (d *DocsState) Update(deltaTime float64) {
	in := ui.PollInput(nil)
	if d.handle(in) || inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.sm.SetState(d.previousState)
	}
}

// handle reports whether to go back.
func (d *DocsState) handle(in ui.Input) bool {
	return d.back.Update(in)
}

func (d *DocsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawText(screen, "Component Documentation", d.res.TitleFace, config.CardMargin, config.TitleY, config.TextColor)

	card := image.Rect(config.CardMargin, config.CardTop, config.ScreenWidth-config.CardMargin, config.CardBottom)
	drawCard(screen, card)

	cols := [4]int{0, 110, 230, 320}
	x := card.Min.X + config.CardPadding
	y := card.Min.Y + 36
	for _, sec := range Reference {
		drawText(screen, sec.Title, d.res.TitleFace, x, y, config.TextColor)
		y += rowHeight
		drawText(screen, sec.Summary, d.res.Face, x, y, config.MutedTextColor)
		y += rowHeight
		for i, h := range [4]string{"Prop", "Type", "Default", "Description"} {
			drawText(screen, h, d.res.Face, x+cols[i], y, config.TextColor)
		}
		for _, p := range sec.Props {
			line := float32(y + rowHeight/3)
			vector.StrokeLine(screen, float32(x), line, float32(card.Max.X-config.CardPadding), line, 1, config.BorderColor, true)
			y += rowHeight
			for i, v := range [4]string{p.Name, p.Type, p.Default, p.Description} {
				drawText(screen, v, d.res.Face, x+cols[i], y, config.MutedTextColor)
			}
		}
		y += rowHeight
	}

	d.back.Draw(screen, d.res.Face)
}

func (d *DocsState) Exit() {}
