package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

/// KeyMap maps a modern keyboard onto the CHIP-8 keypad:
///
///	1 2 3 4      1 2 3 C
///	Q W E R  ->  4 5 6 D
///	A S D F      7 8 9 E
///	Z X C V      A 0 B F
///
var KeyMap = map[sdl.Scancode]int{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}

/// speedStep is how much [ and ] change the instruction rate.
///
const speedStep = 60

/// ProcessEvents from SDL and map keys to the CHIP-8 VM. Returns false
/// once the window has been closed or the user quit.
///
func (e *Emulator) ProcessEvents() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
				e.vm.SetKey(key, ev.Type == sdl.KEYDOWN)
				continue
			}

			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_BACKSPACE:
				e.Reset()

				// holding control during reset will reboot paused
				if ev.Keysym.Mod&sdl.KMOD_CTRL != 0 {
					e.SetPaused(true)
				}
			case sdl.SCANCODE_F3:
				e.LoadDialog()
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				e.SetPaused(!e.paused)
			case sdl.SCANCODE_F6:
				if e.paused {
					e.Step()
				}
			case sdl.SCANCODE_LEFTBRACKET:
				e.SetSpeed(e.pacer.TickRate() - speedStep)
			case sdl.SCANCODE_RIGHTBRACKET:
				e.SetSpeed(e.pacer.TickRate() + speedStep)
			}
		}
	}

	return true
}
