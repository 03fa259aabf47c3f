// Package audio provides the metronome that marks beat boundaries
// during playback. Audio is strictly optional: every operation
// degrades to a no-op when no backend is available.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/kinloom/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Metronome plays short click tones. Beat boundaries get an ordinary
// click; loop wraps and completion get an accented one
type Metronome struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewMetronome creates an uninitialized metronome
func NewMetronome() *Metronome {
	return &Metronome{}
}

// Initialize opens the speaker. Failure means the host has no usable
// audio device; callers treat it as non-fatal and the metronome stays
// silent
func (m *Metronome) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.SpeakerBufferDuration)); err != nil {
		return err
	}
	m.initialized = true
	return nil
}

// Click plays a single tone. Accented clicks sound a fifth above the
// ordinary pitch
func (m *Metronome) Click(accent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	freq := parameter.ClickFrequency
	if accent {
		freq = parameter.AccentFrequency
	}
	tone := newClickTone(sampleRate, freq)
	speaker.Play(beep.Take(sampleRate.N(parameter.ClickDuration), tone))
}

// ToggleMute flips the mute state, returns true if sound is now on
func (m *Metronome) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	return !m.muted
}

// IsMuted returns the current mute state
func (m *Metronome) IsMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.muted
}

// Cleanup closes the speaker. Safe to call without initialization and
// after a previous cleanup
func (m *Metronome) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Close()
	m.initialized = false
}

// clickTone is a sine burst with an exponential decay envelope so the
// tone fades out instead of clipping
type clickTone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newClickTone(sr beep.SampleRate, freq float64) *clickTone {
	return &clickTone{
		sr:   sr,
		freq: freq,
	}
}

func (g *clickTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * parameter.ClickDecayRate)
		sample := parameter.ClickAmplitude * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *clickTone) Err() error {
	return nil
}
