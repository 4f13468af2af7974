package sound

// Output produces one frame of tone at a time and mirrors it to an
// optional Recorder. It is independent of any audio device, so the
// recording is written even when nothing can be played.
type Output struct {
	tone    *Tone
	rec     *Recorder
	samples []int16
}

// NewOutput creates an Output producing fps frames of samples per second.
// rec may be nil.
func NewOutput(tone *Tone, fps int, rec *Recorder) *Output {
	return &Output{
		tone:    tone,
		rec:     rec,
		samples: make([]int16, tone.SamplesFor(fps)),
	}
}

// SampleRate returns the sample rate of the tone.
func (o *Output) SampleRate() int {
	return o.tone.SampleRate()
}

// Next fills and returns the next frame of samples. on is true while the
// sound timer is non-zero. The returned slice is reused by the next call.
func (o *Output) Next(on bool) []int16 {
	o.tone.Fill(o.samples, on)

	if o.rec != nil {
		o.rec.Write(o.samples)
	}

	return o.samples
}

// Close writes out the recording, if there is one.
func (o *Output) Close() error {
	if o.rec == nil {
		return nil
	}

	return o.rec.Close()
}
