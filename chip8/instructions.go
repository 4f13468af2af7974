package chip8

/// execute a decoded instruction. PC has already been advanced past it.
///
func (vm *VM) execute(inst Instruction) error {
	x, y := inst.X, inst.Y

	switch inst.Op {
	case OpCLS:
		vm.cls()
	case OpRET:
		return vm.ret()
	case OpJP:
		vm.PC = inst.NNN
	case OpCALL:
		return vm.call(inst.NNN)
	case OpSEImm:
		vm.skipIf(vm.V[x] == inst.NN)
	case OpSNEImm:
		vm.skipIf(vm.V[x] != inst.NN)
	case OpSEReg:
		vm.skipIf(vm.V[x] == vm.V[y])
	case OpLDImm:
		vm.V[x] = inst.NN
	case OpADDImm:
		vm.V[x] += inst.NN
	case OpLDReg:
		vm.V[x] = vm.V[y]
	case OpOR:
		vm.V[x] |= vm.V[y]
	case OpAND:
		vm.V[x] &= vm.V[y]
	case OpXOR:
		vm.V[x] ^= vm.V[y]
	case OpADDReg:
		vm.addXY(x, y)
	case OpSUB:
		vm.subXY(x, y)
	case OpSHR:
		vm.shr(x)
	case OpSUBN:
		vm.subYX(x, y)
	case OpSHL:
		vm.shl(x)
	case OpSNEReg:
		vm.skipIf(vm.V[x] != vm.V[y])
	case OpLDI:
		vm.I = inst.NNN
	case OpJPV0:
		vm.PC = (inst.NNN + uint16(vm.V[0])) & AddressMask
	case OpRND:
		vm.V[x] = byte(vm.rng.Int63()) & inst.NN
	case OpDRW:
		return vm.drw(x, y, inst.N)
	case OpSKP:
		vm.skipIf(vm.Keys[vm.V[x]&0xF])
	case OpSKNP:
		vm.skipIf(!vm.Keys[vm.V[x]&0xF])
	case OpLDVxDT:
		vm.V[x] = vm.DT
	case OpLDVxK:
		vm.loadXK(x)
	case OpLDDTVx:
		vm.DT = vm.V[x]
	case OpLDSTVx:
		vm.ST = vm.V[x]
	case OpADDI:
		vm.I = (vm.I + uint16(vm.V[x])) & AddressMask
	case OpLDF:
		vm.I = GlyphAddress(vm.V[x])
	case OpLDB:
		return vm.loadB(x)
	case OpLDIVx:
		return vm.saveRegs(x)
	case OpLDVxI:
		return vm.loadRegs(x)
	}

	return nil
}

/// skip the next instruction if cond holds.
///
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

/// clear the video display memory.
///
func (vm *VM) cls() {
	vm.Video = Frame{}
}

/// call a subroutine at address.
///
func (vm *VM) call(address uint16) error {
	if int(vm.SP) >= len(vm.Stack) {
		return ErrStackOverflow
	}

	vm.Stack[vm.SP] = vm.PC
	vm.SP++

	vm.PC = address

	return nil
}

/// return from subroutine.
///
func (vm *VM) ret() error {
	if vm.SP == 0 {
		return ErrStackUnderflow
	}

	vm.SP--
	vm.PC = vm.Stack[vm.SP]

	return nil
}

/// add vy to vx and set carry.
///
func (vm *VM) addXY(x, y byte) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = flag(sum > 0xFF)
}

/// subtract vy from vx, VF set if vx was larger.
///
func (vm *VM) subXY(x, y byte) {
	f := flag(vm.V[x] > vm.V[y])

	vm.V[x] -= vm.V[y]
	vm.V[0xF] = f
}

/// subtract vx from vy and store in vx, VF set if vy was larger.
///
func (vm *VM) subYX(x, y byte) {
	f := flag(vm.V[y] > vm.V[x])

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = f
}

/// shr vx 1 bit, VF gets the LSB of vx before the shift.
///
func (vm *VM) shr(x byte) {
	f := vm.V[x] & 1

	vm.V[x] >>= 1
	vm.V[0xF] = f
}

/// shl vx 1 bit, VF gets the MSB of vx before the shift.
///
func (vm *VM) shl(x byte) {
	f := vm.V[x] >> 7

	vm.V[x] <<= 1
	vm.V[0xF] = f
}

/// load vx with the lowest key held down. With no key down, PC is
/// rolled back so this instruction executes again next step.
///
func (vm *VM) loadXK(x byte) {
	if key, ok := vm.firstKey(); ok {
		vm.V[x] = key
	} else {
		vm.PC -= 2
	}
}

/// draw an n-byte sprite at I to video memory at vx, vy. Pixels past an
/// edge wrap around to the other side. VF is set if any lit pixel was
/// turned off.
///
func (vm *VM) drw(x, y, n byte) error {
	sprite, ok := vm.span(vm.I, int(n))
	if !ok {
		return ErrMemoryFault
	}

	c := byte(0)

	// origin of the sprite
	ox := int(vm.V[x])
	oy := int(vm.V[y])

	for row, s := range sprite {
		line := ((oy + row) % Height) * Width

		for col := 0; col < 8; col++ {
			if s&(0x80>>uint(col)) == 0 {
				continue
			}

			p := line + (ox+col)%Width

			// collision if the pixel is about to be turned off
			c |= vm.Video[p]
			vm.Video[p] ^= 1
		}
	}

	vm.V[0xF] = c

	return nil
}

/// store the BCD of vx at I, I+1 and I+2.
///
func (vm *VM) loadB(x byte) error {
	m, ok := vm.span(vm.I, 3)
	if !ok {
		return ErrMemoryFault
	}

	n := vm.V[x]

	m[0] = n / 100
	m[1] = n / 10 % 10
	m[2] = n % 10

	return nil
}

/// save registers v0..vx to I.
///
func (vm *VM) saveRegs(x byte) error {
	m, ok := vm.span(vm.I, int(x)+1)
	if !ok {
		return ErrMemoryFault
	}

	copy(m, vm.V[:x+1])

	return nil
}

/// load registers v0..vx from I.
///
func (vm *VM) loadRegs(x byte) error {
	m, ok := vm.span(vm.I, int(x)+1)
	if !ok {
		return ErrMemoryFault
	}

	copy(vm.V[:x+1], m)

	return nil
}

func flag(b bool) byte {
	if b {
		return 1
	}

	return 0
}
