package cpu

import "fmt"

// aluOps resolves the 0x8 family by the low nibble.
var aluOps = [16]Op{
	0x0: OpMove,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAdd,
	0x5: OpSub,
	0x6: OpShiftRight,
	0x7: OpSubReverse,
	0xE: OpShiftLeft,
}

// miscOps resolves the 0xF family by the low byte.
var miscOps = map[uint8]Op{
	0x07: OpLoadDelay,
	0x0A: OpWaitKey,
	0x15: OpSetDelay,
	0x18: OpSetSound,
	0x1E: OpAddIndex,
	0x29: OpLoadFont,
	0x33: OpStoreBCD,
	0x55: OpStoreRegisters,
	0x65: OpLoadRegisters,
}

// Decode translates an opcode into an instruction. It does not depend on any
// machine state. Opcodes matching no instruction return an error wrapping
// ErrUnknownOpcode.
func Decode(opcode uint16) (Instruction, error) {
	op := decodeOp(opcode)
	if op == OpInvalid {
		return Instruction{Opcode: opcode}, fmt.Errorf("%w: %04X", ErrUnknownOpcode, opcode)
	}
	return Instruction{Op: op, Opcode: opcode}, nil
}

func decodeOp(opcode uint16) Op {
	low := uint8(opcode)
	nibble := low & 0x0F

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			return OpClear
		case 0x00EE:
			return OpReturn
		}
	case 0x1:
		return OpJump
	case 0x2:
		return OpCall
	case 0x3:
		return OpSkipEqualImm
	case 0x4:
		return OpSkipNotEqualImm
	case 0x5:
		if nibble == 0 {
			return OpSkipEqualReg
		}
	case 0x6:
		return OpLoadImm
	case 0x7:
		return OpAddImm
	case 0x8:
		return aluOps[nibble]
	case 0x9:
		if nibble == 0 {
			return OpSkipNotEqualReg
		}
	case 0xA:
		return OpLoadIndex
	case 0xB:
		return OpJumpOffset
	case 0xC:
		return OpRandom
	case 0xD:
		return OpDraw
	case 0xE:
		switch low {
		case 0x9E:
			return OpSkipKey
		case 0xA1:
			return OpSkipNotKey
		}
	case 0xF:
		return miscOps[low]
	}
	return OpInvalid
}
