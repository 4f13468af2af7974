package chip8

/// Memory layout of the CHIP-8.
///
const (
	/// MemorySize is the total addressable memory.
	///
	MemorySize = 0x1000

	/// AddressMask truncates address arithmetic to 12 bits.
	///
	AddressMask = 0xFFF

	/// FontBase is where the hex digit glyphs are stored.
	///
	FontBase = 0x050

	/// GlyphSize is the number of bytes (rows) in a single glyph.
	///
	GlyphSize = 5

	/// ProgramStart is where all programs are loaded and begin execution.
	///
	ProgramStart = 0x200

	/// MaxProgramSize is the largest ROM that fits after ProgramStart.
	///
	MaxProgramSize = MemorySize - ProgramStart
)

/// Font contains the 16 hex digit sprites (0-F), 5 bytes each.
///
var Font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

/// GlyphAddress returns the address of the font sprite for digit d.
///
func GlyphAddress(d byte) uint16 {
	return FontBase + uint16(d)*GlyphSize
}

/// span returns the memory slice [addr, addr+n) or false if any of it
/// lies outside of addressable memory.
///
func (vm *VM) span(addr uint16, n int) ([]byte, bool) {
	end := int(addr) + n
	if end > MemorySize {
		return nil, false
	}

	return vm.Memory[addr:end], true
}
