package cpu

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/memory"
)

// execute applies a decoded instruction. PC already points to the next
// instruction. Only stack errors are returned.
func (m *Machine) execute(ins Instruction) error {
	s := &m.state
	x, y := ins.X(), ins.Y()
	kk := ins.Byte()

	switch ins.Op {
	case OpClear:
		m.display.Clear()

	case OpReturn:
		if s.SP == 0 {
			return ErrStackUnderflow
		}
		s.SP--
		s.PC = s.Stack[s.SP]

	case OpJump:
		s.PC = ins.Address()

	case OpCall:
		if int(s.SP) >= StackSize {
			return ErrStackOverflow
		}
		s.Stack[s.SP] = s.PC
		s.SP++
		s.PC = ins.Address()

	case OpSkipEqualImm:
		m.skipIf(s.V[x] == kk)
	case OpSkipNotEqualImm:
		m.skipIf(s.V[x] != kk)
	case OpSkipEqualReg:
		m.skipIf(s.V[x] == s.V[y])
	case OpSkipNotEqualReg:
		m.skipIf(s.V[x] != s.V[y])
	case OpSkipKey:
		m.skipIf(m.keys.IsPressed(s.V[x]))
	case OpSkipNotKey:
		m.skipIf(!m.keys.IsPressed(s.V[x]))

	case OpLoadImm:
		s.V[x] = kk
	case OpAddImm:
		s.V[x] += kk
	case OpMove:
		s.V[x] = s.V[y]

	case OpOr:
		s.V[x] |= s.V[y]
	case OpAnd:
		s.V[x] &= s.V[y]
	case OpXor:
		s.V[x] ^= s.V[y]

	case OpAdd:
		sum := uint16(s.V[x]) + uint16(s.V[y])
		s.V[x] = uint8(sum)
		s.V[flagRegister] = boolToFlag(sum > 0xFF)
	case OpSub:
		noBorrow := s.V[x] > s.V[y]
		s.V[x] -= s.V[y]
		s.V[flagRegister] = boolToFlag(noBorrow)
	case OpSubReverse:
		noBorrow := s.V[y] > s.V[x]
		s.V[x] = s.V[y] - s.V[x]
		s.V[flagRegister] = boolToFlag(noBorrow)
	case OpShiftRight:
		lsb := s.V[x] & 0x01
		s.V[x] >>= 1
		s.V[flagRegister] = lsb
	case OpShiftLeft:
		msb := (s.V[x] & 0x80) >> 7
		s.V[x] <<= 1
		s.V[flagRegister] = msb

	case OpLoadIndex:
		s.I = ins.Address()
	case OpJumpOffset:
		s.PC = (uint16(s.V[0]) + ins.Address()) & memory.AddressMask
	case OpRandom:
		s.V[x] = m.rng.Byte() & kk
	case OpDraw:
		m.draw(s.V[x], s.V[y], ins.N())

	case OpLoadDelay:
		s.V[x] = s.DelayTimer
	case OpWaitKey:
		if key, ok := m.keys.FirstPressed(); ok {
			s.V[x] = key
		} else {
			s.Waiting = true
			s.WaitRegister = x
		}
	case OpSetDelay:
		s.DelayTimer = s.V[x]
	case OpSetSound:
		s.SoundTimer = s.V[x]

	case OpAddIndex:
		s.I += uint16(s.V[x])
	case OpLoadFont:
		s.I = memory.FontAddress(s.V[x])
	case OpStoreBCD:
		value := s.V[x]
		m.memory.Write(s.I, value/100)
		m.memory.Write(s.I+1, value/10%10)
		m.memory.Write(s.I+2, value%10)
	case OpStoreRegisters:
		for i := uint16(0); i <= uint16(x); i++ {
			m.memory.Write(s.I+i, s.V[i])
		}
	case OpLoadRegisters:
		for i := uint16(0); i <= uint16(x); i++ {
			s.V[i] = m.memory.Read(s.I + i)
		}

	default:
		return fmt.Errorf("unsupported instruction variant %d", ins.Op)
	}
	return nil
}

// skipIf skips the next instruction when the condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.state.PC += 2
	}
}

// draw XORs an n byte sprite from memory at I onto the framebuffer at the
// position in the given register values. VF is set on collision.
func (m *Machine) draw(vx, vy, n uint8) {
	var rows [15]uint8
	for row := uint16(0); row < uint16(n); row++ {
		rows[row] = m.memory.Read(m.state.I + row)
	}

	x := int(vx) % display.Width
	y := int(vy) % display.Height
	collision := m.display.DrawSprite(x, y, rows[:n])
	m.state.V[flagRegister] = boolToFlag(collision)
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
