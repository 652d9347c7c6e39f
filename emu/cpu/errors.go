package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrRomUnreadable is returned when the program bytes can not be read.
	ErrRomUnreadable = errors.New("rom unreadable")
	// ErrUnknownOpcode is returned by Decode for opcodes that match no instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow halts the machine on a call with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow halts the machine on a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// UnknownOpcodeError describes an opcode that was fetched but could not be
// decoded. Execution continues after it.
type UnknownOpcodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at $%03X", e.Opcode, e.Address)
}

func (e *UnknownOpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}
