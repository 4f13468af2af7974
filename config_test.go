package main

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, &bytes.Buffer{})
	assert.NoError(t, err)

	assert.Equal(t, "", cfg.ROM)
	assert.Equal(t, 600.0, cfg.Hz)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 10, cfg.Scale)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Debug)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]string{"-hz", "1000", "-seed", "7", "-wav", "out.wav", "games/PONG"}, &bytes.Buffer{})
	assert.NoError(t, err)

	assert.Equal(t, "games/PONG", cfg.ROM)
	assert.Equal(t, 1000.0, cfg.Hz)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "out.wav", cfg.Wav)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"two roms", []string{"a.ch8", "b.ch8"}},
		{"rom twice", []string{"-rom", "a.ch8", "b.ch8"}},
		{"slow", []string{"-hz", "1"}},
		{"fast", []string{"-hz", "100000"}},
		{"fps", []string{"-fps", "0"}},
		{"scale", []string{"-scale", "0"}},
		{"debug and quiet", []string{"-debug", "-quiet"}},
		{"unknown flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.args, &bytes.Buffer{})
			assert.True(t, err != nil)
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	var out bytes.Buffer

	_, err := ParseConfig([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.True(t, bytes.Contains(out.Bytes(), []byte("usage: vcpu8")))
}
