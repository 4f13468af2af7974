package chip8

import (
	"errors"
	"fmt"
)

var (
	/// ErrROMTooLarge is returned when a program won't fit past ProgramStart.
	///
	ErrROMTooLarge = errors.New("program too large to fit in memory")

	/// ErrROMUnreadable is returned when the program source can't be read.
	///
	ErrROMUnreadable = errors.New("program could not be read")

	/// ErrStackOverflow is returned by CALL with a full stack.
	///
	ErrStackOverflow = errors.New("stack overflow")

	/// ErrStackUnderflow is returned by RET with an empty stack.
	///
	ErrStackUnderflow = errors.New("stack underflow")

	/// ErrMemoryFault is returned when an instruction fetch or an I-relative
	/// access would go past the end of memory.
	///
	ErrMemoryFault = errors.New("memory fault")
)

// LoadError describes a failure to load a program into the VM.
type LoadError struct {
	// Path is the file being loaded, if there was one.
	Path string

	// Size is the number of bytes in the program (or read before failing).
	Size int

	// Err is ErrROMTooLarge or ErrROMUnreadable, possibly wrapping the cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("chip8: load %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("chip8: load %d bytes: %v", e.Size, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ExecError describes a failure executing a single instruction.
type ExecError struct {
	// PC is the address of the instruction that failed.
	PC uint16

	// Opcode is the instruction word, zero if the fetch itself failed.
	Opcode uint16

	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("chip8: %04X %04X: %v", e.PC, e.Opcode, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// wrapped joins a sentinel error with an underlying cause so that
// errors.Is matches both.
type wrapped struct {
	sentinel error
	cause    error
}

func (w wrapped) Error() string {
	return fmt.Sprintf("%v: %v", w.sentinel, w.cause)
}

func (w wrapped) Is(target error) bool {
	return target == w.sentinel
}

func (w wrapped) Unwrap() error {
	return w.cause
}
