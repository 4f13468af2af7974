package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/vcpu8/chip8/emulator/chip8"
	"github.com/vcpu8/chip8/emulator/pacer"
	"github.com/vcpu8/chip8/emulator/sound"
	"github.com/veandco/go-sdl2/sdl"
)

const title = "CHIP-8"

/// Smallest window the display can be shrunk to.
///
const (
	minWindowW = 256
	minWindowH = 132
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := ParseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Debug, cfg.Quiet)

	if err := run(cfg, logger); err != nil {
		logger.Error("Emulation failed", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *log.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	// create the CHIP-8 virtual machine, must happen early!
	vm := chip8.New(chip8.WithRandom(rand.NewSource(seed)))
	logger.Debug("Created virtual machine", log.Int64("seed", seed))

	// initialize SDL
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	e, err := NewEmulator(cfg, vm, logger)
	if err != nil {
		return err
	}
	defer e.Destroy()

	if cfg.ROM != "" {
		e.LoadROM(cfg.ROM)
	}

	e.Run()

	return nil
}

/// Emulator is the host around the virtual machine: it owns the window,
/// feeds it input, paces it and presents its video and audio.
///
type Emulator struct {
	vm     *chip8.VM
	log    *log.Logger
	pacer  *pacer.Pacer
	rom    string
	paused bool

	window   *sdl.Window
	renderer *sdl.Renderer
	screen   *Screen

	// output generates the tone (and the -wav capture) every frame,
	// audio plays it and is nil when there is no audio device.
	output *sound.Output
	audio  *Audio
}

/// NewEmulator creates the window, renderer, screen and audio device.
///
func NewEmulator(cfg Config, vm *chip8.VM, logger *log.Logger) (*Emulator, error) {
	var rec *sound.Recorder
	if cfg.Wav != "" {
		rec = sound.NewRecorder(cfg.Wav, sound.SampleRate)
	}

	e := &Emulator{
		vm:     vm,
		log:    logger,
		pacer:  pacer.New(cfg.Hz, float64(cfg.FPS)),
		output: sound.NewOutput(sound.NewTone(sound.SampleRate, sound.Frequency), cfg.FPS, rec),
	}

	var err error

	w, h := int32(chip8.Width*cfg.Scale), int32(chip8.Height*cfg.Scale)
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)

	if e.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w, h, flags); err != nil {
		e.Destroy()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	e.window.SetMinimumSize(minWindowW, minWindowH)

	if e.renderer, err = sdl.CreateRenderer(e.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_TARGETTEXTURE); err != nil {
		e.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	if e.screen, err = NewScreen(e.renderer); err != nil {
		e.Destroy()
		return nil, fmt.Errorf("creating screen: %w", err)
	}

	// no audio device isn't fatal, the game just plays silently
	if e.audio, err = NewAudio(e.output.SampleRate()); err != nil {
		logger.Warn("Audio unavailable", log.Err(err))
	}

	return e, nil
}

/// Destroy releases everything created by NewEmulator and writes out the
/// sound capture.
///
func (e *Emulator) Destroy() {
	if e.audio != nil {
		e.audio.Close()
	}
	if err := e.output.Close(); err != nil {
		e.log.Error("Writing sound capture failed", err)
	}
	if e.screen != nil {
		e.screen.Destroy()
	}
	if e.renderer != nil {
		e.renderer.Destroy()
	}
	if e.window != nil {
		e.window.Destroy()
	}
}

/// Run until the window is closed or the user quits.
///
func (e *Emulator) Run() {
	last := time.Now()

	for e.ProcessEvents() {
		now := time.Now()
		ticks, frames := e.pacer.Advance(now.Sub(last))
		last = now

		if !e.paused {
			ran := 0
			for ; ran < ticks; ran++ {
				if !e.Step() {
					break
				}
			}
			e.pacer.Ran(ran)
		}

		if frames > 0 {
			e.Refresh()
		} else {
			sdl.Delay(1)
		}
	}
}

/// Step the virtual machine one instruction. Any execution error pauses
/// emulation. Returns false if the VM stopped.
///
func (e *Emulator) Step() bool {
	if e.paused {
		if inst, err := e.vm.Fetch(e.vm.PC); err == nil {
			e.log.Debug("Step",
				log.Uint16("pc", e.vm.PC),
				log.String("op", inst.Op.String()),
				log.String("opcode", fmt.Sprintf("%04X", inst.Raw)))
		}
	}

	if err := e.vm.Step(); err != nil {
		e.log.Error("Execution halted", err)
		e.SetPaused(true)
		return false
	}

	return true
}

/// Refresh renders the latest video memory, updates the title and audio.
///
func (e *Emulator) Refresh() {
	if err := e.screen.Refresh(e.vm.VideoBuffer()); err != nil {
		e.log.Error("Rendering failed", err)
	}

	w, h := e.window.GetSize()
	if err := e.screen.Copy(w, h); err != nil {
		e.log.Error("Rendering failed", err)
	}

	e.renderer.Present()

	samples := e.output.Next(!e.paused && e.vm.SoundTimer() > 0)
	if e.audio != nil {
		if err := e.audio.Queue(samples); err != nil {
			e.log.Warn("Queueing audio failed", log.Err(err))
		}
	}

	e.updateTitle()
}

func (e *Emulator) updateTitle() {
	ips, fps := e.pacer.Stats()

	s := title
	if e.rom != "" {
		s += " - " + e.rom
	}

	switch {
	case e.paused:
		s += " [paused]"
	case e.vm.Waiting():
		s += " [waiting for key]"
	}

	e.window.SetTitle(fmt.Sprintf("%s (%d ips, %d fps)", s, ips, fps))
}

/// LoadROM loads a ROM file. On failure the current program keeps running.
///
func (e *Emulator) LoadROM(path string) {
	if err := e.vm.LoadFile(path); err != nil {
		e.log.Error("Loading ROM failed", err, log.String("file", path))
		dialog.Message("%s", err).Title("Loading ROM failed").Error()
		return
	}

	e.rom = path
	e.paused = false

	e.log.Info("Loaded ROM", log.String("file", path))
}

/// LoadDialog asks the user for a ROM file to load.
///
func (e *Emulator) LoadDialog() {
	path, err := dialog.File().Filter("CHIP-8 ROM", "ch8", "c8").Filter("All files", "*").Title("Load ROM").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			e.log.Error("Opening file dialog failed", err)
		}
		return
	}

	e.LoadROM(path)
}

/// Reset reboots the current program.
///
func (e *Emulator) Reset() {
	e.vm.Reset()
	e.paused = false

	e.log.Info("Reset", log.String("file", e.rom))
}

/// SetPaused pauses or resumes emulation.
///
func (e *Emulator) SetPaused(paused bool) {
	if e.paused == paused {
		return
	}
	e.paused = paused

	if paused {
		e.log.Info("Paused", log.Uint16("pc", e.vm.PC))
	} else {
		e.log.Info("Resumed")
	}
}

/// SetSpeed changes the number of instructions executed per second.
///
func (e *Emulator) SetSpeed(hz float64) {
	if hz < minHz {
		hz = minHz
	}
	if hz > maxHz {
		hz = maxHz
	}

	e.pacer.SetTickRate(hz)
	e.log.Info("Speed changed", log.Int("hz", int(hz)))
}
