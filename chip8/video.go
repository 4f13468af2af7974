package chip8

/// Resolution of the CHIP-8 display.
///
const (
	Width  = 64
	Height = 32
)

/// Frame is the 64x32 display. Each byte is one pixel, 0 (off) or 1 (on),
/// stored row-major starting at the top-left.
///
type Frame [Width * Height]byte

/// Pixel returns true if the pixel at x, y is lit. Coordinates wrap.
///
func (f Frame) Pixel(x, y int) bool {
	x, y = wrap(x, Width), wrap(y, Height)
	return f[y*Width+x] != 0
}

/// Lit returns the number of pixels turned on.
///
func (f Frame) Lit() int {
	n := 0
	for _, p := range f {
		n += int(p)
	}

	return n
}

/// VideoBuffer returns a copy of video memory. The copy stays valid while the
/// VM continues to execute, so a renderer can use it as a snapshot.
///
func (vm *VM) VideoBuffer() Frame {
	return vm.Video
}

func wrap(n, m int) int {
	n %= m
	if n < 0 {
		n += m
	}

	return n
}
