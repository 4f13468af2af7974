package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

/// Config holds everything the host can be told from the command line.
///
type Config struct {
	// ROM is the program to load at startup. Empty boots to a blank screen
	// and waits for a ROM to be opened (F3).
	ROM string

	// Hz is the number of instructions executed per second.
	Hz float64

	// FPS is the render rate.
	FPS int

	// Scale is the initial window size in screen pixels per CHIP-8 pixel.
	Scale int

	// Seed for the RND instruction. Zero seeds from the clock.
	Seed int64

	// Wav, when set, captures the sound timer tone to this file on exit.
	Wav string

	Debug bool
	Quiet bool
}

/// Speed limits for Hz.
///
const (
	minHz = 60
	maxHz = 6000
)

/// ParseConfig parses the command line arguments (without the program name).
///
func ParseConfig(args []string, output io.Writer) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("vcpu8", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&cfg.ROM, "rom", "", "ROM file to load")
	flags.Float64Var(&cfg.Hz, "hz", 600, "instructions executed per second")
	flags.IntVar(&cfg.FPS, "fps", 60, "frames rendered per second")
	flags.IntVar(&cfg.Scale, "scale", 10, "window scale")
	flags.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	flags.StringVar(&cfg.Wav, "wav", "", "record the sound timer tone to a WAV file")
	flags.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&cfg.Quiet, "quiet", false, "only log errors")

	flags.Usage = func() {
		fmt.Fprintf(output, "usage: vcpu8 [options] [rom]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	// positional argument is the ROM
	if flags.NArg() > 1 {
		return cfg, errors.New("only one ROM file may be given")
	}
	if flags.NArg() == 1 {
		if cfg.ROM != "" {
			return cfg, errors.New("ROM given both as -rom and as an argument")
		}
		cfg.ROM = flags.Arg(0)
	}

	return cfg, cfg.Validate()
}

/// Validate checks that all the settings are usable.
///
func (c Config) Validate() error {
	if c.Hz < minHz || c.Hz > maxHz {
		return fmt.Errorf("hz must be between %d and %d", minHz, maxHz)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return errors.New("fps must be between 1 and 240")
	}
	if c.Scale < 1 || c.Scale > 40 {
		return errors.New("scale must be between 1 and 40")
	}
	if c.Debug && c.Quiet {
		return errors.New("debug and quiet can't both be set")
	}

	return nil
}
