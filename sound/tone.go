// Package sound turns the CHIP-8 sound timer into audio samples. The VM
// only says whether a tone should be playing; everything about what that
// tone sounds like lives here.
package sound

import "math"

// Default tone parameters.
const (
	SampleRate = 44100
	Frequency  = 440
	Amplitude  = math.MaxInt16 / 4
)

// Tone is a square wave generator with a continuous phase, so that buffers
// filled one after another join without clicks.
type Tone struct {
	sampleRate int
	freq       int

	// phase is the position within the current period, in samples
	phase int
}

// NewTone creates a square wave of freq Hz sampled at sampleRate.
func NewTone(sampleRate, freq int) *Tone {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	if freq <= 0 || freq*2 > sampleRate {
		freq = Frequency
	}

	return &Tone{
		sampleRate: sampleRate,
		freq:       freq,
	}
}

// SampleRate returns the number of samples per second.
func (t *Tone) SampleRate() int {
	return t.sampleRate
}

// SamplesFor returns the number of samples covering one frame at fps.
func (t *Tone) SamplesFor(fps int) int {
	if fps <= 0 {
		return 0
	}

	return t.sampleRate / fps
}

// Fill writes samples into buf. When on is false the buffer is silent and
// the phase restarts so the next tone begins on a rising edge.
func (t *Tone) Fill(buf []int16, on bool) {
	if !on {
		for i := range buf {
			buf[i] = 0
		}
		t.phase = 0
		return
	}

	period := t.sampleRate / t.freq
	half := period / 2

	for i := range buf {
		if t.phase < half {
			buf[i] = Amplitude
		} else {
			buf[i] = -Amplitude
		}

		t.phase++
		if t.phase >= period {
			t.phase = 0
		}
	}
}
