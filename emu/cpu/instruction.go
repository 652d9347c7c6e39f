package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies one of the 34 instruction variants.
type Op uint8

// Instruction variants, the comment lists the opcode pattern.
const (
	OpInvalid Op = iota

	OpClear           // 00E0
	OpReturn          // 00EE
	OpJump            // 1nnn
	OpCall            // 2nnn
	OpSkipEqualImm    // 3xkk
	OpSkipNotEqualImm // 4xkk
	OpSkipEqualReg    // 5xy0
	OpLoadImm         // 6xkk
	OpAddImm          // 7xkk
	OpMove            // 8xy0
	OpOr              // 8xy1
	OpAnd             // 8xy2
	OpXor             // 8xy3
	OpAdd             // 8xy4
	OpSub             // 8xy5
	OpShiftRight      // 8xy6
	OpSubReverse      // 8xy7
	OpShiftLeft       // 8xyE
	OpSkipNotEqualReg // 9xy0
	OpLoadIndex       // Annn
	OpJumpOffset      // Bnnn
	OpRandom          // Cxkk
	OpDraw            // Dxyn
	OpSkipKey         // Ex9E
	OpSkipNotKey      // ExA1
	OpLoadDelay       // Fx07
	OpWaitKey         // Fx0A
	OpSetDelay        // Fx15
	OpSetSound        // Fx18
	OpAddIndex        // Fx1E
	OpLoadFont        // Fx29
	OpStoreBCD        // Fx33
	OpStoreRegisters  // Fx55
	OpLoadRegisters   // Fx65

	opCount
)

// mnemonics maps every variant to the shared CHIP-8 instruction definitions.
var mnemonics = [opCount]*chip8.Instruction{
	OpClear:           chip8.Cls,
	OpReturn:          chip8.Ret,
	OpJump:            chip8.Jp,
	OpCall:            chip8.Call,
	OpSkipEqualImm:    chip8.Se,
	OpSkipNotEqualImm: chip8.Sne,
	OpSkipEqualReg:    chip8.Se,
	OpLoadImm:         chip8.Ld,
	OpAddImm:          chip8.Add,
	OpMove:            chip8.Ld,
	OpOr:              chip8.Or,
	OpAnd:             chip8.And,
	OpXor:             chip8.Xor,
	OpAdd:             chip8.Add,
	OpSub:             chip8.Sub,
	OpShiftRight:      chip8.Shr,
	OpSubReverse:      chip8.Subn,
	OpShiftLeft:       chip8.Shl,
	OpSkipNotEqualReg: chip8.Sne,
	OpLoadIndex:       chip8.Ld,
	OpJumpOffset:      chip8.Jp,
	OpRandom:          chip8.Rnd,
	OpDraw:            chip8.Drw,
	OpSkipKey:         chip8.Skp,
	OpSkipNotKey:      chip8.Sknp,
	OpLoadDelay:       chip8.Ld,
	OpWaitKey:         chip8.Ld,
	OpSetDelay:        chip8.Ld,
	OpSetSound:        chip8.Ld,
	OpAddIndex:        chip8.Add,
	OpLoadFont:        chip8.Ld,
	OpStoreBCD:        chip8.Ld,
	OpStoreRegisters:  chip8.Ld,
	OpLoadRegisters:   chip8.Ld,
}

// Instruction is a decoded opcode. The operands are extracted from the raw
// opcode on demand.
type Instruction struct {
	Op     Op
	Opcode uint16
}

// X returns the register index in bits 8-11.
func (i Instruction) X() uint8 {
	return uint8(i.Opcode>>8) & 0x0F
}

// Y returns the register index in bits 4-7.
func (i Instruction) Y() uint8 {
	return uint8(i.Opcode>>4) & 0x0F
}

// N returns the low nibble.
func (i Instruction) N() uint8 {
	return uint8(i.Opcode) & 0x0F
}

// Byte returns the immediate low byte.
func (i Instruction) Byte() uint8 {
	return uint8(i.Opcode)
}

// Address returns the low 12 bits.
func (i Instruction) Address() uint16 {
	return i.Opcode & 0x0FFF
}

// Name returns the assembler mnemonic of the instruction.
func (i Instruction) Name() string {
	if i.Op == OpInvalid || i.Op >= opCount {
		return ""
	}
	return mnemonics[i.Op].Name
}

// String returns the instruction in assembler syntax, for example "se V2, $34".
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf(".word $%04X", i.Opcode)
	}
	if params := i.params(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

func (i Instruction) params() string {
	x, y := i.X(), i.Y()

	switch i.Op {
	case OpClear, OpReturn:
		return ""
	case OpJump, OpCall:
		return fmt.Sprintf("$%03X", i.Address())
	case OpJumpOffset:
		return fmt.Sprintf("V0, $%03X", i.Address())
	case OpSkipEqualImm, OpSkipNotEqualImm, OpLoadImm, OpAddImm, OpRandom:
		return fmt.Sprintf("V%X, $%02X", x, i.Byte())
	case OpSkipEqualReg, OpSkipNotEqualReg, OpMove, OpOr, OpAnd, OpXor, OpAdd, OpSub, OpSubReverse:
		return fmt.Sprintf("V%X, V%X", x, y)
	case OpShiftRight, OpShiftLeft, OpSkipKey, OpSkipNotKey:
		return fmt.Sprintf("V%X", x)
	case OpLoadIndex:
		return fmt.Sprintf("I, $%03X", i.Address())
	case OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, i.N())
	case OpLoadDelay:
		return fmt.Sprintf("V%X, DT", x)
	case OpWaitKey:
		return fmt.Sprintf("V%X, K", x)
	case OpSetDelay:
		return fmt.Sprintf("DT, V%X", x)
	case OpSetSound:
		return fmt.Sprintf("ST, V%X", x)
	case OpAddIndex:
		return fmt.Sprintf("I, V%X", x)
	case OpLoadFont:
		return fmt.Sprintf("F, V%X", x)
	case OpStoreBCD:
		return fmt.Sprintf("B, V%X", x)
	case OpStoreRegisters:
		return fmt.Sprintf("[I], V%X", x)
	case OpLoadRegisters:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}
