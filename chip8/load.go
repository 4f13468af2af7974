package chip8

import (
	"io"
	"os"
)

/// Load a program into memory at ProgramStart and reset the VM. Any
/// previously loaded program is replaced. On error the VM is unchanged.
///
func (vm *VM) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return &LoadError{Size: len(program), Err: ErrROMTooLarge}
	}

	// clear out the previous program, keeping the reserved area
	for i := ProgramStart; i < MemorySize; i++ {
		vm.ROM[i] = 0
	}

	copy(vm.ROM[ProgramStart:], program)

	vm.Reset()

	return nil
}

/// LoadReader reads a program from r and loads it.
///
func (vm *VM) LoadReader(r io.Reader) error {
	// read one byte past the limit to detect oversize programs
	program, err := io.ReadAll(io.LimitReader(r, MaxProgramSize+1))
	if err != nil {
		return &LoadError{Size: len(program), Err: wrapped{ErrROMUnreadable, err}}
	}

	return vm.Load(program)
}

/// LoadFile reads a ROM file and loads it.
///
func (vm *VM) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: wrapped{ErrROMUnreadable, err}}
	}
	defer f.Close()

	if err := vm.LoadReader(f); err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return err
	}

	return nil
}
