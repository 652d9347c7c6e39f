package memory

const (
	// FontStart is the address of the first glyph.
	FontStart = 0x050
	// GlyphSize is the number of bytes (rows) per glyph.
	GlyphSize = 5
)

// FontSet holds the 4x5 pixel hex digits 0-F.
var FontSet = [16 * GlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// FontAddress returns the address of the glyph for the low nibble of digit.
func FontAddress(digit uint8) uint16 {
	return FontStart + GlyphSize*uint16(digit&0x0F)
}

// IsFontAddress reports whether the masked address lies inside the font atlas.
func IsFontAddress(addr uint16) bool {
	addr &= AddressMask
	return addr >= FontStart && addr < FontStart+uint16(len(FontSet))
}
