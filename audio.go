package main

import (
	"encoding/binary"

	"github.com/veandco/go-sdl2/sdl"
)

/// maxQueuedFrames of audio is the most that will be buffered in SDL. Any
/// more and the tone lags behind the sound timer.
///
const maxQueuedFrames = 3

/// Audio plays frames of the CHIP-8 tone on an SDL audio device.
///
type Audio struct {
	dev  sdl.AudioDeviceID
	data []byte
}

/// NewAudio opens a 16-bit mono audio device at sampleRate.
///
func NewAudio(sampleRate int) (*Audio, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}

	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, err
	}

	// start playing immediately, silence is queued when the timer is zero
	sdl.PauseAudioDevice(dev, false)

	return &Audio{dev: dev}, nil
}

/// Queue one frame of samples, unless enough is already buffered.
///
func (a *Audio) Queue(samples []int16) error {
	if len(a.data) != len(samples)*2 {
		a.data = make([]byte, len(samples)*2)
	}

	if sdl.GetQueuedAudioSize(a.dev) > uint32(len(a.data)*maxQueuedFrames) {
		return nil
	}

	for i, s := range samples {
		binary.LittleEndian.PutUint16(a.data[i*2:], uint16(s))
	}

	return sdl.QueueAudio(a.dev, a.data)
}

/// Close the audio device.
///
func (a *Audio) Close() {
	sdl.CloseAudioDevice(a.dev)
}
