// Package audio produces the audible alert for failed command runs.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880
	toneLen    = 120 * time.Millisecond
)

// Beeper plays a short tone through the speaker. When the audio device
// cannot be initialized it degrades to the fallback (typically the terminal
// bell) instead of failing the session.
type Beeper struct {
	initialized bool
	fallback    func()
}

// NewBeeper initializes the speaker. Initialization failure is non-fatal:
// alerts route through fallback.
func NewBeeper(fallback func()) *Beeper {
	b := &Beeper{fallback: fallback}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err == nil {
		b.initialized = true
	}
	return b
}

// Alert plays one tone, or rings the fallback bell.
func (b *Beeper) Alert() {
	if !b.initialized {
		if b.fallback != nil {
			b.fallback()
		}
		return
	}
	sine, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		if b.fallback != nil {
			b.fallback()
		}
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLen), sine))
}

// Close releases the audio device.
func (b *Beeper) Close() {
	if b.initialized {
		speaker.Close()
	}
}
