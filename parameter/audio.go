package parameter

import "time"

// Metronome
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// ClickFrequency is the sine frequency of an ordinary beat click
	ClickFrequency = 880.0

	// AccentFrequency is the sine frequency of the click on beat one
	AccentFrequency = 1320.0

	// ClickDuration is how long a single click tone lasts
	ClickDuration = 50 * time.Millisecond

	// ClickAmplitude is the peak click volume (0.0 to 1.0)
	ClickAmplitude = 0.3

	// ClickDecayRate shapes the exponential fade so clicks end without
	// a pop
	ClickDecayRate = 60.0

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = time.Second / 10
)
