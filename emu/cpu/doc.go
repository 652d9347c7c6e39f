// Package cpu implements the CHIP-8 fetch-decode-execute engine.
//
// # Machine
//
// A Machine owns the CPU registers, the call stack, the two timers, the 4KB
// memory and references the framebuffer and keypad shared with a frontend:
//
//	m := cpu.New(cpu.WithSeed(1))
//	if err := m.LoadFile("pong.ch8"); err != nil {
//		return err
//	}
//	for {
//		if err := m.Step(); err != nil {
//			return err // stack overflow or underflow, the machine is halted
//		}
//	}
//
// The host schedules Step at any cycle rate and calls Tick at 60 Hz to
// decrement the delay and sound timers.
//
// # Decoding
//
// Decode turns an opcode into one of 34 instruction variants. The leading
// nibbles 0x0, 0x8, 0xE and 0xF are shared by several instructions and are
// resolved by the low byte or nibble. Opcodes that match no instruction are
// reported through the unknown opcode handler and skipped.
//
// # Quirks
//
//   - Flag writes happen after the result, so VF as a destination ends up
//     holding the flag.
//   - 8xy6 and 8xyE shift Vx in place, Vy is ignored.
//   - Fx55 and Fx65 leave I unchanged.
//   - Sprites wrap at their origin only, pixels past the right or bottom edge
//     are clipped.
//   - The font atlas at 0x050-0x09F is read only, Fx33 and Fx55 writes that
//     land in it are dropped.
//   - Fx0A puts the machine into a key wait mode instead of re-executing the
//     instruction.
package cpu
