package chip8

import (
	"math/rand"
	"time"
)

/// VM is the CHIP-8 virtual machine. All state is exported so that a host
/// can inspect it, but only the VM's own methods should mutate it while
/// a program is running.
///
type VM struct {
	/// ROM is a pristine image of memory as it was right after the font
	/// and the last program were loaded. Reset copies it back to Memory.
	///
	ROM [MemorySize]byte

	/// Memory addressable by the CHIP-8. The first 512 bytes are reserved
	/// and hold the font sprites at FontBase.
	///
	Memory [MemorySize]byte

	/// Video memory (64x32). Each byte is a single pixel, either 0 or 1.
	///
	Video Frame

	/// PC is the program counter. All programs begin at ProgramStart.
	///
	PC uint16

	/// I is the address register.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the flag register.
	///
	V [16]byte

	/// Stack of return addresses, SP is the number of cells in use.
	///
	Stack [16]uint16
	SP    uint8

	/// DT and ST are the delay and sound timers. Both count down once
	/// per executed instruction and stop at zero.
	///
	DT byte
	ST byte

	/// Keys hold the current state of the 16-key pad.
	///
	Keys [16]bool

	/// Cycles is how many instructions have been executed since Reset.
	///
	Cycles uint64

	// rng supplies the bytes for RND.
	rng rand.Source
}

/// Option configures a VM at construction.
///
type Option func(*VM)

/// WithRandom sets the random source used by RND. Tests use a seeded
/// source to get repeatable programs.
///
func WithRandom(src rand.Source) Option {
	return func(vm *VM) {
		vm.rng = src
	}
}

/// New creates a CHIP-8 virtual machine with the font loaded and no
/// program. Zeroed program memory decodes as CLS.
///
func New(opts ...Option) *VM {
	vm := &VM{}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.rng == nil {
		vm.rng = rand.NewSource(time.Now().UnixNano())
	}

	// the font lives in the reserved area of every image
	copy(vm.ROM[FontBase:], Font[:])

	vm.Reset()

	return vm
}

/// Reset the VM memory back to the loaded ROM image and clear all the
/// registers, timers, keys and video memory.
///
func (vm *VM) Reset() {
	vm.Memory = vm.ROM

	// reset video memory
	vm.Video = Frame{}

	// reset keys
	vm.Keys = [16]bool{}

	// reset program counter and stack pointer
	vm.PC = ProgramStart
	vm.SP = 0
	vm.Stack = [16]uint16{}

	// reset address and virtual registers
	vm.I = 0
	vm.V = [16]byte{}

	// reset timer registers
	vm.DT = 0
	vm.ST = 0

	vm.Cycles = 0
}

/// DelayTimer returns the current value of the delay timer.
///
func (vm *VM) DelayTimer() byte {
	return vm.DT
}

/// SoundTimer returns the current value of the sound timer. While it is
/// non-zero the host should be emitting a tone.
///
func (vm *VM) SoundTimer() byte {
	return vm.ST
}

/// Fetch decodes the instruction at addr without executing it.
///
func (vm *VM) Fetch(addr uint16) (Instruction, error) {
	b, ok := vm.span(addr, 2)
	if !ok {
		return Instruction{}, &ExecError{PC: addr, Err: ErrMemoryFault}
	}

	return Decode(uint16(b[0])<<8 | uint16(b[1])), nil
}

/// Waiting is true when the next instruction is LD Vx, K and no key is
/// down, meaning Step will make no progress. It is derived from the
/// current state each time it is called.
///
func (vm *VM) Waiting() bool {
	inst, err := vm.Fetch(vm.PC)
	if err != nil || inst.Op != OpLDVxK {
		return false
	}

	_, pressed := vm.firstKey()
	return !pressed
}

/// Step the CHIP-8 virtual machine a single instruction, then tick the
/// timers. On error the timers are left alone and PC is left past the
/// failing instruction.
///
func (vm *VM) Step() error {
	pc := vm.PC

	// fetch the next instruction
	inst, err := vm.Fetch(pc)
	if err != nil {
		return err
	}

	// advance the program counter before executing
	vm.PC += 2

	if err := vm.execute(inst); err != nil {
		return &ExecError{PC: pc, Opcode: inst.Raw, Err: err}
	}

	// both timers count down per cycle
	if vm.DT > 0 {
		vm.DT--
	}
	if vm.ST > 0 {
		vm.ST--
	}

	vm.Cycles++

	return nil
}
