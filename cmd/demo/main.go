// cmd/demo/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/defs"
	"go-eye-demo/internal/state"
	"go-eye-demo/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadFaces() (face, title font.Face, err error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse font: %w", err)
	}
	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	if face, err = newFace(config.FontSize); err != nil {
		return nil, nil, fmt.Errorf("failed to create font face: %w", err)
	}
	if title, err = newFace(config.TitleFontSize); err != nil {
		return nil, nil, fmt.Errorf("failed to create title face: %w", err)
	}
	return face, title, nil
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	presets, err := defs.LoadPresets(settings.PresetsPath)
	if err != nil {
		log.Fatal(err)
	}
	face, titleFace, err := loadFaces()
	if err != nil {
		log.Fatal(err)
	}

	res := &state.Resources{
		Face:      face,
		TitleFace: titleFace,
		Renderer:  render.NewIconRenderer(),
		Settings:  settings,
		Presets:   presets,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewShowcaseState(sm, res))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Eye Components")
	err = ebiten.RunGame(app)
	sm.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}
