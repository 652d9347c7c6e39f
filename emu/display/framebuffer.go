// Package display contains the 64x32 monochrome framebuffer.
package display

import "sync"

const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the framebuffer, indexed by y*Width + x.
type Frame [Width * Height]bool

// Pixel reports whether the pixel at x, y is lit. Coordinates wrap, also
// negative ones.
func (f *Frame) Pixel(x, y int) bool {
	x = (x%Width + Width) % Width
	y = (y%Height + Height) % Height
	return f[y*Width+x]
}

// Framebuffer holds the pixel state written by the draw and clear
// instructions. It is safe to read snapshots from another goroutine.
type Framebuffer struct {
	mu      sync.RWMutex
	pixels  Frame
	changed bool
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	f.mu.Lock()
	f.pixels = Frame{}
	f.changed = true
	f.mu.Unlock()
}

// DrawSprite XORs the sprite rows onto the framebuffer with the top left
// corner at x, y. The origin wraps around the screen, but sprite pixels that
// fall past the right or bottom edge are clipped. Returns true if any lit
// pixel was turned off.
func (f *Framebuffer) DrawSprite(x, y int, rows []uint8) bool {
	x %= Width
	y %= Height

	f.mu.Lock()
	defer f.mu.Unlock()

	collision := false
	for row, sprite := range rows {
		py := y + row
		if py >= Height {
			break
		}
		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			px := x + col
			if px >= Width {
				break
			}

			idx := py*Width + px
			if f.pixels[idx] {
				collision = true
			}
			f.pixels[idx] = !f.pixels[idx]
		}
	}

	f.changed = true
	return collision
}

// Pixel reports whether the pixel at x, y is lit. Coordinates wrap.
func (f *Framebuffer) Pixel(x, y int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pixels.Pixel(x, y)
}

// Snapshot returns a copy of the current pixels.
func (f *Framebuffer) Snapshot() Frame {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pixels
}

// Poll returns a copy of the pixels and whether they changed since the
// previous Poll.
func (f *Framebuffer) Poll() (Frame, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	changed := f.changed
	f.changed = false
	return f.pixels, changed
}

// Reset clears the pixels and the changed flag.
func (f *Framebuffer) Reset() {
	f.mu.Lock()
	f.pixels = Frame{}
	f.changed = false
	f.mu.Unlock()
}
