// FILE: cmd/termdemo/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"go-eye-demo/internal/config"
	"go-eye-demo/internal/defs"

	"github.com/gdamore/tcell/v2"
)

func run(d *Demo) {
	ticker := time.NewTicker(config.TermTick) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !d.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			d.Tick(now)
		}
	}
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	presets, err := defs.LoadPresets(settings.PresetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load presets: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.Fini()

	sound := newClicker(settings.Sound)
	defer sound.Close()

	cfg := settings.EyeConfig()
	cfg.Size = min(max(cfg.Size, config.MinEyeSize), config.MaxEyeSize)
	demo := NewDemo(screen, cfg, presets, sound, time.Now())
	demo.Start()
	defer demo.Stop()

	run(demo)
}
