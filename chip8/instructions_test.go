package chip8_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
	"github.com/vcpu8/chip8/emulator/chip8"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		x, y   byte
		op     uint16
		result byte
		vf     byte
	}{
		{"add no carry", 0x10, 0x20, 0x8014, 0x30, 0},
		{"add carry", 0xFF, 0x01, 0x8014, 0x00, 1},
		{"add exact 255", 0xF0, 0x0F, 0x8014, 0xFF, 0},
		{"add carry wraps", 0xC8, 0x64, 0x8014, 0x2C, 1},
		{"sub no borrow", 0x30, 0x10, 0x8015, 0x20, 1},
		{"sub borrow", 0x10, 0x30, 0x8015, 0xE0, 0},
		{"sub equal", 0x42, 0x42, 0x8015, 0x00, 0},
		{"subn no borrow", 0x10, 0x30, 0x8017, 0x20, 1},
		{"subn borrow", 0x30, 0x10, 0x8017, 0xE0, 0},
		{"subn equal", 0x42, 0x42, 0x8017, 0x00, 0},
		{"shr lsb set", 0x05, 0x00, 0x8016, 0x02, 1},
		{"shr lsb clear", 0x04, 0x00, 0x8016, 0x02, 0},
		{"shl msb set", 0x81, 0x00, 0x801E, 0x02, 1},
		{"shl msb clear", 0x41, 0x00, 0x801E, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := loadVM(t, 0x6000|uint16(tt.x), 0x6100|uint16(tt.y), tt.op)
			stepVM(t, vm, 3)

			expectV(t, vm, 0, tt.result)
			expectV(t, vm, 0xF, tt.vf)
		})
	}
}

func TestFlagWinsOverResultInVF(t *testing.T) {
	vm := loadVM(t,
		0x6FFF, // LD VF, #FF
		0x6103, // LD V1, #03
		0x8F14, // ADD VF, V1
	)
	stepVM(t, vm, 3)

	expectV(t, vm, 0xF, 1)
}

func TestAddImmediateWraps(t *testing.T) {
	for x := 0; x < 16; x++ {
		vm := loadVM(t,
			0x60FE|uint16(x)<<8, // LD Vx, #FE
			0x7003|uint16(x)<<8, // ADD Vx, #03
		)
		vm.V[0xF] = 0x77
		stepVM(t, vm, 2)

		expectV(t, vm, x, 0x01)
		if x != 0xF {
			expectV(t, vm, 0xF, 0x77)
		}
	}
}

func TestBitwise(t *testing.T) {
	vm := loadVM(t,
		0x60CC, // LD V0, #CC
		0x61AA, // LD V1, #AA
		0x8200, // LD V2, V0
		0x8211, // OR V2, V1
		0x8300, // LD V3, V0
		0x8312, // AND V3, V1
		0x8400, // LD V4, V0
		0x8413, // XOR V4, V1
	)
	stepVM(t, vm, 8)

	expectV(t, vm, 2, 0xEE)
	expectV(t, vm, 3, 0x88)
	expectV(t, vm, 4, 0x66)
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name string
		op   uint16
		skip bool
	}{
		{"se imm taken", 0x3005, true},
		{"se imm not taken", 0x3006, false},
		{"sne imm taken", 0x4006, true},
		{"sne imm not taken", 0x4005, false},
		{"se reg taken", 0x5010, true},
		{"se reg not taken", 0x5020, false},
		{"sne reg taken", 0x9020, true},
		{"sne reg not taken", 0x9010, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := loadVM(t, tt.op)
			vm.V[0] = 5
			vm.V[1] = 5
			vm.V[2] = 6
			stepVM(t, vm, 1)

			if tt.skip {
				expectPC(t, vm, 0x204)
			} else {
				expectPC(t, vm, 0x202)
			}
		})
	}
}

func TestKeySkips(t *testing.T) {
	vm := loadVM(t,
		0x6107, // LD V1, #07
		0xE19E, // SKP V1
		0xE1A1, // SKNP V1
		0xE1A1, // SKNP V1
	)
	stepVM(t, vm, 2)
	expectPC(t, vm, 0x204)

	vm.PressKey(7)
	stepVM(t, vm, 1)
	expectPC(t, vm, 0x206)

	vm.PC = 0x202
	stepVM(t, vm, 1)
	expectPC(t, vm, 0x206)

	vm.ReleaseKey(7)
	stepVM(t, vm, 1)
	expectPC(t, vm, 0x20A)
}

func TestJumps(t *testing.T) {
	vm := loadVM(t, 0x1ABC)
	stepVM(t, vm, 1)
	expectPC(t, vm, 0xABC)

	vm = loadVM(t, 0x6010, 0xB300)
	stepVM(t, vm, 2)
	expectPC(t, vm, 0x310)

	// nnn + V0 past the end of memory wraps to 12 bits
	vm = loadVM(t, 0x60FF, 0xBFFF)
	stepVM(t, vm, 2)
	expectPC(t, vm, 0x0FE)
}

func TestIndexRegister(t *testing.T) {
	vm := loadVM(t,
		0xAFF0, // LD I, #FF0
		0x6020, // LD V0, #20
		0xF01E, // ADD I, V0
		0x610A, // LD V1, #0A
		0xF129, // LD F, V1
	)

	stepVM(t, vm, 3)
	assert.Equal(t, uint16(0x010), vm.I)

	stepVM(t, vm, 2)
	assert.Equal(t, uint16(0x050+0x0A*5), vm.I)
	assert.Equal(t, byte(0xF0), vm.Memory[vm.I])
}

func TestDelayTimerToRegister(t *testing.T) {
	vm := loadVM(t, 0x6009, 0xF015, 0xF207)
	stepVM(t, vm, 3)

	// set to 9, ticked once, then read before the next tick
	expectV(t, vm, 2, 8)
}

func TestBCD(t *testing.T) {
	tests := []struct {
		value byte
		want  []byte
	}{
		{157, []byte{1, 5, 7}},
		{0, []byte{0, 0, 0}},
		{9, []byte{0, 0, 9}},
		{40, []byte{0, 4, 0}},
		{255, []byte{2, 5, 5}},
	}

	for _, tt := range tests {
		vm := loadVM(t, 0xA400, 0x6500|uint16(tt.value), 0xF533)
		stepVM(t, vm, 3)

		if diff := cmp.Diff(tt.want, vm.Memory[0x400:0x403]); diff != "" {
			t.Errorf("BCD(%d): (-want, +got)\n%s", tt.value, diff)
		}
	}
}

func TestRegisterDumpAndLoad(t *testing.T) {
	vm := loadVM(t,
		0xA500, // LD I, #500
		0xF355, // LD [I], V3
		0xA508, // LD I, #508
		0xF265, // LD V2, [I]
	)
	for i := range vm.V {
		vm.V[i] = byte(0x10 + i)
	}
	copy(vm.Memory[0x508:], []byte{0xA0, 0xA1, 0xA2, 0xA3})

	stepVM(t, vm, 2)
	if diff := cmp.Diff([]byte{0x10, 0x11, 0x12, 0x13, 0x00}, vm.Memory[0x500:0x505]); diff != "" {
		t.Errorf("dump: (-want, +got)\n%s", diff)
	}
	assert.Equal(t, uint16(0x500), vm.I)

	stepVM(t, vm, 2)
	expectV(t, vm, 0, 0xA0)
	expectV(t, vm, 2, 0xA2)
	expectV(t, vm, 3, 0x13)
}

func TestIndexRelativeFaults(t *testing.T) {
	tests := []struct {
		name string
		i    uint16
		op   uint16
	}{
		{"bcd", 0xFFE, 0xF033},
		{"dump", 0xFF8, 0xFF55},
		{"load", 0xFFF, 0xF165},
		{"draw", 0xFFC, 0xD005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := loadVM(t, tt.op)
			vm.I = tt.i

			err := vm.Step()
			assert.True(t, errors.Is(err, chip8.ErrMemoryFault))
		})
	}

	// right up to the end is fine
	vm := loadVM(t, 0xF033)
	vm.I = 0xFFD
	stepVM(t, vm, 1)
}

func TestZeroedMemoryClearsScreen(t *testing.T) {
	vm := loadVM(t, 0xA050, 0xD005)
	stepVM(t, vm, 2)
	assert.True(t, vm.VideoBuffer().Lit() > 0)

	// past the end of the program everything decodes as 0000
	stepVM(t, vm, 1)
	expectPC(t, vm, 0x206)
	assert.Equal(t, 0, vm.VideoBuffer().Lit())
}

func TestClearScreen(t *testing.T) {
	vm := loadVM(t, 0xA050, 0xD005, 0x00E0)
	stepVM(t, vm, 2)
	assert.True(t, vm.VideoBuffer().Lit() > 0)

	stepVM(t, vm, 1)
	assert.Equal(t, 0, vm.VideoBuffer().Lit())
}

func TestDrawTwiceRestores(t *testing.T) {
	vm := loadVM(t,
		0xA20A, // LD I, #20A
		0x6010, // LD V0, #10
		0x6108, // LD V1, #08
		0xD011, // DRW V0, V1, 1
		0xD011, // DRW V0, V1, 1
		0xFF00, // sprite row: all 8 pixels
	)
	stepVM(t, vm, 4)

	expectV(t, vm, 0xF, 0)
	frame := vm.VideoBuffer()
	assert.Equal(t, 8, frame.Lit())
	for x := 0x10; x < 0x18; x++ {
		assert.True(t, frame.Pixel(x, 8))
	}

	stepVM(t, vm, 1)
	expectV(t, vm, 0xF, 1)
	if diff := cmp.Diff(chip8.Frame{}, vm.VideoBuffer()); diff != "" {
		t.Errorf("video: (-want, +got)\n%s", diff)
	}
}

func TestDrawCollisionIsSticky(t *testing.T) {
	vm := loadVM(t,
		0xA20A, // LD I, #20A
		0xD002, // DRW V0, V0, 2
		0x6001, // LD V0, #01
		0xD002, // DRW V0, V0, 2
		0x1208, // JP #208
		0x80C0, // sprite rows
	)
	stepVM(t, vm, 4)

	// the first row overlaps, the second row doesn't
	expectV(t, vm, 0xF, 1)
}

func TestDrawWraps(t *testing.T) {
	vm := loadVM(t,
		0xA20A, // LD I, #20A
		0x603C, // LD V0, #3C (60)
		0x611F, // LD V1, #1F (31)
		0xD012, // DRW V0, V1, 2
		0x1208, // JP #208
		0xFFFF, // sprite rows
	)
	stepVM(t, vm, 4)

	frame := vm.VideoBuffer()
	assert.Equal(t, 16, frame.Lit())

	for _, p := range []struct{ x, y int }{
		{60, 31}, {63, 31}, {0, 31}, {3, 31},
		{60, 0}, {63, 0}, {0, 0}, {3, 0},
	} {
		assert.True(t, frame.Pixel(p.x, p.y))
	}
	assert.False(t, frame.Pixel(4, 0))
	assert.False(t, frame.Pixel(59, 31))
}

func TestDrawCoordinatesWrapFromRegisters(t *testing.T) {
	vm := loadVM(t,
		0xA050, // LD I, #050 (glyph 0)
		0x6046, // LD V0, #46 (70)
		0x6124, // LD V1, #24 (36)
		0xD015, // DRW V0, V1, 5
	)
	stepVM(t, vm, 4)

	frame := vm.VideoBuffer()

	// glyph 0 top row is F0, drawn at 6, 4
	for x := 6; x < 10; x++ {
		assert.True(t, frame.Pixel(x, 4))
	}
	assert.False(t, frame.Pixel(10, 4))
	assert.True(t, frame.Pixel(6, 5))
	assert.False(t, frame.Pixel(7, 5))
}

func TestUnknownOpcodesAreNoops(t *testing.T) {
	for _, op := range []uint16{0x0123, 0x00E1, 0x8008, 0x800F, 0xE000, 0xE19F, 0xF000, 0xF0FF, 0xF066} {
		vm := loadVM(t, op)
		before := *vm

		stepVM(t, vm, 1)

		expectPC(t, vm, 0x202)
		assert.Equal(t, before.V, vm.V)
		assert.Equal(t, before.I, vm.I)
		assert.Equal(t, before.SP, vm.SP)
		assert.Equal(t, before.Memory, vm.Memory)
		assert.Equal(t, before.Video, vm.Video)
	}
}
