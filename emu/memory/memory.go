// Package memory implements the 4KB address space of the CHIP-8 machine.
//
// Every access is masked to the 12-bit address space, so computed addresses
// such as I+offset wrap around instead of reaching outside the array.
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of addressable bytes.
	Size = 4096
	// AddressMask limits any address to the 12-bit space.
	AddressMask = Size - 1

	// ProgramStart is where programs are loaded and execution begins.
	ProgramStart = 0x200
	// MaxRomSize is the largest program that fits between ProgramStart and the end of memory.
	MaxRomSize = Size - ProgramStart
)

// ErrRomTooLarge is returned when a program does not fit into program space.
var ErrRomTooLarge = errors.New("rom too large")

// Memory is the machine RAM with the font atlas pre-loaded.
type Memory struct {
	data [Size]uint8
}

// New returns memory holding only the font atlas.
func New() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

// Reset zeroes memory and re-installs the font atlas.
func (m *Memory) Reset() {
	m.data = [Size]uint8{}
	m.loadFont()
}

func (m *Memory) loadFont() {
	copy(m.data[FontStart:], FontSet[:])
}

// Load writes program starting at ProgramStart. Memory is left untouched
// when the program is too large.
func (m *Memory) Load(program []byte) error {
	if len(program) > MaxRomSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d bytes", ErrRomTooLarge, len(program), MaxRomSize)
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) uint8 {
	return m.data[addr&AddressMask]
}

// Write stores value at addr. Writes into the font atlas are dropped, the
// glyphs stay as installed by New and Reset.
func (m *Memory) Write(addr uint16, value uint8) {
	addr &= AddressMask
	if IsFontAddress(addr) {
		return
	}
	m.data[addr] = value
}

// ReadWord returns the big-endian 16-bit word at addr. The second byte wraps
// to address 0 when addr is the last address.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m.Read(addr))<<8 | uint16(m.Read(addr+1))
}

// Bytes returns a copy of the whole address space.
func (m *Memory) Bytes() [Size]uint8 {
	return m.data
}
