package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vcpu8/chip8/emulator/chip8"
)

/// Screen renders the CHIP-8 video memory into a render target texture that
/// is then stretched onto the window.
///
type Screen struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

/// NewScreen creates the render target for the CHIP-8 video memory.
///
func NewScreen(renderer *sdl.Renderer) (*Screen, error) {
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888), int(sdl.TEXTUREACCESS_TARGET), chip8.Width, chip8.Height)
	if err != nil {
		return nil, err
	}

	return &Screen{renderer: renderer, texture: texture}, nil
}

/// Destroy frees the texture.
///
func (s *Screen) Destroy() {
	s.texture.Destroy()
}

/// Refresh redraws the render target from a video memory snapshot.
///
func (s *Screen) Refresh(frame chip8.Frame) error {
	if err := s.renderer.SetRenderTarget(s.texture); err != nil {
		return err
	}

	// the background color for the screen
	s.renderer.SetDrawColor(143, 145, 133, 255)
	s.renderer.Clear()

	// set the pixel color
	s.renderer.SetDrawColor(17, 29, 43, 255)

	for p, lit := range frame {
		if lit != 0 {
			s.renderer.DrawPoint(int32(p%chip8.Width), int32(p/chip8.Width))
		}
	}

	// restore the render target
	return s.renderer.SetRenderTarget(nil)
}

/// Copy the render target to the window, letterboxed to keep the aspect.
///
func (s *Screen) Copy(winW, winH int32) error {
	s.renderer.SetDrawColor(32, 42, 53, 255)
	s.renderer.Clear()

	dst := letterbox(winW, winH)
	return s.renderer.Copy(s.texture, nil, &dst)
}

/// letterbox returns the largest rectangle with the display's aspect ratio
/// that fits in the window, centered. The bars are on the sides when the
/// window is too wide and on the top and bottom when it is too tall.
///
func letterbox(winW, winH int32) sdl.Rect {
	if winW <= 0 || winH <= 0 {
		return sdl.Rect{}
	}

	w, h := winW, winW*chip8.Height/chip8.Width
	if h > winH {
		w, h = winH*chip8.Width/chip8.Height, winH
	}

	return sdl.Rect{
		X: (winW - w) / 2,
		Y: (winH - h) / 2,
		W: w,
		H: h,
	}
}
