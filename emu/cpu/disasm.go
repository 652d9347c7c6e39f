package cpu

import (
	"fmt"
	"io"

	"github.com/beanboi7/chyp8/emu/memory"
)

// Disassemble writes a linear listing of program to w, one line per 16-bit
// word as it would be placed in memory. Words that are no instruction, such as
// sprite data, are written as .word directives.
func Disassemble(w io.Writer, program []byte) error {
	address := uint16(memory.ProgramStart)

	for offset := 0; offset+1 < len(program); offset += 2 {
		opcode := uint16(program[offset])<<8 | uint16(program[offset+1])

		// a failed decode still renders as .word
		ins, _ := Decode(opcode)
		if _, err := fmt.Fprintf(w, "$%03X  %04X  %s\n", address, opcode, ins); err != nil {
			return fmt.Errorf("writing listing at $%03X: %w", address, err)
		}
		address += 2
	}

	if len(program)%2 == 1 {
		b := program[len(program)-1]
		if _, err := fmt.Fprintf(w, "$%03X  %02X    .byte $%02X\n", address, b, b); err != nil {
			return fmt.Errorf("writing listing at $%03X: %w", address, err)
		}
	}
	return nil
}
