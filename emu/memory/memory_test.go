package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()

	for i, b := range FontSet {
		assert.Equal(t, b, m.Read(uint16(FontStart+i)))
	}
	for addr := uint16(ProgramStart); addr < Size; addr++ {
		assert.Equal(t, uint8(0), m.Read(addr))
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty program", 0, false},
		{"single opcode", 2, false},
		{"max size", MaxRomSize, false},
		{"one byte too large", MaxRomSize + 1, true},
		{"way too large", 2 * Size, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			before := m.Bytes()

			program := make([]byte, tt.size)
			for i := range program {
				program[i] = byte(i) | 1
			}

			err := m.Load(program)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrRomTooLarge))
				assert.Equal(t, before, m.Bytes())
				return
			}

			assert.NoError(t, err)
			for i, b := range program {
				assert.Equal(t, b, m.Read(uint16(ProgramStart+i)))
			}
		})
	}
}

func TestLoadRejects3585Bytes(t *testing.T) {
	m := New()
	err := m.Load(make([]byte, 3585))
	assert.True(t, errors.Is(err, ErrRomTooLarge))
	assert.Equal(t, New().Bytes(), m.Bytes())
}

func TestAddressMask(t *testing.T) {
	m := New()

	m.Write(0x1234, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(0x0234))
	assert.Equal(t, uint8(0xAB), m.Read(0xF234))

	m.Write(0x0FFF, 0x12)
	m.Write(0x0000, 0x34)
	assert.Equal(t, uint16(0x1234), m.ReadWord(0x0FFF))
}

func TestFontIsWriteProtected(t *testing.T) {
	m := New()
	for addr := uint16(0); addr < Size; addr++ {
		m.Write(addr, 0xAA)
		m.Write(addr|0xF000, 0xAA)
	}

	for i, b := range FontSet {
		assert.Equal(t, b, m.Read(uint16(FontStart+i)))
	}
	assert.Equal(t, uint8(0xAA), m.Read(FontStart-1))
	assert.Equal(t, uint8(0xAA), m.Read(FontStart+uint16(len(FontSet))))
}

func TestReset(t *testing.T) {
	m := New()
	assert.NoError(t, m.Load([]byte{0x12, 0x00}))
	m.Write(0x300, 0xFF)

	m.Reset()
	assert.Equal(t, New().Bytes(), m.Bytes())
}

func TestFontAddress(t *testing.T) {
	tests := []struct {
		digit uint8
		want  uint16
	}{
		{0x0, 0x050},
		{0x1, 0x055},
		{0xA, 0x082},
		{0xF, 0x09B},
		{0x1F, 0x09B},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FontAddress(tt.digit))
	}
}
