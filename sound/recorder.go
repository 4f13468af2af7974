package sound

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Recorder captures samples and writes them out as a 16-bit mono WAV file.
// Audio data is buffered in memory in its entirety and only written to
// disk by Close.
type Recorder struct {
	path       string
	sampleRate int
	buffer     []int
}

// NewRecorder creates a recorder that will write to path on Close.
func NewRecorder(path string, sampleRate int) *Recorder {
	return &Recorder{
		path:       path,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}
}

// Write appends samples to the recording.
func (r *Recorder) Write(samples []int16) {
	for _, s := range samples {
		r.buffer = append(r.buffer, int(s))
	}
}

// Len returns the number of samples recorded.
func (r *Recorder) Len() int {
	return len(r.buffer)
}

// Close encodes the recording to disk.
func (r *Recorder) Close() (rerr error) {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("sound: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, r.sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  r.sampleRate,
		},
		Data:           r.buffer,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("sound: encoding %s: %w", r.path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("sound: encoding %s: %w", r.path, err)
	}

	return nil
}
