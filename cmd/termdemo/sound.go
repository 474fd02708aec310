package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const clickDuration = 40 * time.Millisecond

// clicker plays a short tone whenever the eye is toggled.
type clicker struct {
	ready      bool
	sampleRate beep.SampleRate
}

func newClicker(enabled bool) *clicker {
	c := &clicker{sampleRate: beep.SampleRate(44100)}
	if !enabled {
		return c
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the demo runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return c
	}
	c.ready = true
	return c
}

// Click plays a lower tone for the closed eye than for the open one.
func (c *clicker) Click(closed bool) {
	if c == nil || !c.ready {
		return
	}
	freq := 880.0
	if closed {
		freq = 660.0
	}
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(clickDuration), sine))
}

func (c *clicker) Close() {
	if c != nil && c.ready {
		speaker.Close()
	}
}
