package cpu

import "github.com/beanboi7/chyp8/emu/memory"

const (
	// RegisterCount is the number of general registers V0-VF.
	RegisterCount = 16
	// StackSize is the maximum call depth.
	StackSize = 16

	flagRegister = 0xF
)

// State is the CPU register file.
type State struct {
	V  [RegisterCount]uint8
	I  uint16 // address register
	PC uint16
	SP uint8

	Stack [StackSize]uint16 // return addresses only

	DelayTimer uint8 // counts down at 60Hz
	SoundTimer uint8 // same as above, buzzer sounds while non-zero

	// Waiting is set by Fx0A while no key is pressed, the pressed key will be
	// stored in V[WaitRegister].
	Waiting      bool
	WaitRegister uint8
}

// NewState returns a zeroed state with the program counter at the program start.
func NewState() State {
	return State{
		PC: memory.ProgramStart,
	}
}
